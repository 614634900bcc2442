package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	gw "github.com/tbeaudouin05/authnet-billing/api/services/authnet/gateway"
)

const countryUSA = "USA"

var hundred = decimal.NewFromInt(100)

// toMajorUnits renders minor units as the gateway amount string, e.g. 2599 -> "25.99".
func toMajorUnits(minor int64) string {
	return decimal.NewFromInt(minor).Div(hundred).StringFixed(2)
}

// toMinorUnits converts a gateway amount back to minor units.
func toMinorUnits(major decimal.Decimal) int64 {
	return major.Mul(hundred).Round(0).IntPart()
}

func streetLine(a Address) string {
	return strings.TrimSpace(a.AddressLine1 + " " + a.AddressLine2)
}

func toGatewayAddress(a Address) gw.CustomerAddress {
	return gw.CustomerAddress{
		Address: streetLine(a),
		City:    a.City,
		State:   a.State,
		Zip:     a.PostalCode,
		Country: countryUSA,
	}
}

func fromGatewayAddress(a gw.CustomerAddress) Address {
	return Address{
		AddressLine1: a.Address,
		City:         a.City,
		State:        a.State,
		PostalCode:   a.Zip,
	}
}

var gatewayTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
}

// parseGatewayTime parses submitTimeUTC values. The API sometimes omits the zone
// designator; those values are UTC.
func parseGatewayTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range gatewayTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized gateway time %q", s)
}

func lastFour(number string) string {
	if len(number) <= 4 {
		return number
	}
	return number[len(number)-4:]
}

// splitExpiration splits an unmasked "YYYY-MM" expiration date.
func splitExpiration(exp string) (year, month string) {
	parts := strings.SplitN(exp, "-", 2)
	if len(parts) != 2 {
		return "", ""
	}
	return parts[0], parts[1]
}
