package coupon

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/jengzang/flightnet-backend/internal/models"
)

// DateLayout is the date format used by the coupon dataset
const DateLayout = "2006-01-02"

// CSVHeader is the column order of the coupon dataset
var CSVHeader = []string{
	"pnr_kodu", "havayolu", "bilet_tutari_tl", "iade_edilen_tutar_tl",
	"iade_tarihi", "iptal_nedeni", "son_kullanim_tarihi",
}

// ParseCSV reads the coupon dataset. The first row is a header. Rows
// without a code or a refund amount are skipped.
func ParseCSV(r io.Reader) ([]models.Coupon, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read coupon header: %w", err)
	}

	var coupons []models.Coupon
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read coupon line %d: %w", line, err)
		}
		if len(record) < len(CSVHeader) {
			continue
		}

		field := func(i int) string { return strings.TrimSpace(record[i]) }
		if field(0) == "" || field(3) == "" {
			continue
		}

		c, err := parseRecord(field)
		if err != nil {
			return nil, fmt.Errorf("coupon line %d: %w", line, err)
		}
		coupons = append(coupons, c)
	}

	return coupons, nil
}

func parseRecord(field func(int) string) (models.Coupon, error) {
	var original float64
	if s := field(2); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return models.Coupon{}, fmt.Errorf("invalid ticket amount %q: %w", s, err)
		}
		original = v
	}

	discount, err := strconv.ParseFloat(field(3), 64)
	if err != nil {
		return models.Coupon{}, fmt.Errorf("invalid refund amount %q: %w", field(3), err)
	}

	expiry, err := time.Parse(DateLayout, field(6))
	if err != nil {
		return models.Coupon{}, fmt.Errorf("invalid expiry date %q: %w", field(6), err)
	}

	return models.Coupon{
		Code:           field(0),
		Airline:        field(1),
		OriginalAmount: original,
		DiscountAmount: discount,
		IssueDate:      field(4),
		Reason:         field(5),
		ExpiryDate:     expiry,
	}, nil
}
