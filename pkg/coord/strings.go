package coord

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	rLV95 = regexp.MustCompile(`^[eE]=?(?P<e>[12]\d{6}(?:\.\d+)?)[;,\s]+[nN]=?(?P<n>[12]\d{6}(?:\.\d+)?)(?:[;,\s]+[hH]?=?(?P<h>-?\d+(?:\.\d+)?))?$`)

	rPlanar = regexp.MustCompile(`^(?P<e>[12]\d{6}(?:\.\d+)?)[;,\s]+(?P<n>[12]\d{6}(?:\.\d+)?)(?:[;,\s]+(?P<h>-?\d+(?:\.\d+)?))?$`)

	rHemi = regexp.MustCompile(`^(?P<a>\d+\.\d+)\s*(?P<ns>[nNsS])[;,\s]+(?P<b>\d+\.\d+)\s*(?P<ew>[eEwW])$`)

	rDec = regexp.MustCompile(`^(?P<a>-?\d+\.\d+)[;,\s]+(?P<b>-?\d+\.\d+)(?:[;,\s]+(?P<h>-?\d+(?:\.\d+)?))?$`)
)

// StringToPoint parses a free-form coordinate string and returns the
// point together with the CRS name it was recognized as. Seven-digit
// pairs are treated as LV95 meters, everything else as WGS84 degrees.
func StringToPoint(s string) (Point, string, error) {
	s = strings.Trim(s, " \t\n\r.,")

	for _, r := range []*regexp.Regexp{rLV95, rPlanar} {
		if !r.MatchString(s) {
			continue
		}

		res := r.FindStringSubmatch(s)

		e, err := strconv.ParseFloat(res[1], 64)
		if err != nil {
			return nil, "", err
		}

		n, err := strconv.ParseFloat(res[2], 64)
		if err != nil {
			return nil, "", err
		}

		if res[3] == "" {
			return Point{e, n}, "CH1903+", nil
		}

		h, err := strconv.ParseFloat(res[3], 64)
		if err != nil {
			return nil, "", err
		}

		return Point{e, n, h}, "CH1903+", nil
	}

	if rHemi.MatchString(s) {
		res := rHemi.FindStringSubmatch(s)

		lat, err := strconv.ParseFloat(res[1], 64)
		if err != nil {
			return nil, "", err
		}

		if res[2] == "S" || res[2] == "s" {
			lat = -lat
		}

		lon, err := strconv.ParseFloat(res[3], 64)
		if err != nil {
			return nil, "", err
		}

		if res[4] == "W" || res[4] == "w" {
			lon = -lon
		}

		return Point{lat, lon}, "WGS84", nil
	}

	if rDec.MatchString(s) {
		res := rDec.FindStringSubmatch(s)

		lat, err := strconv.ParseFloat(res[1], 64)
		if err != nil {
			return nil, "", err
		}

		lon, err := strconv.ParseFloat(res[2], 64)
		if err != nil {
			return nil, "", err
		}

		if res[3] == "" {
			return Point{lat, lon}, "WGS84", nil
		}

		h, err := strconv.ParseFloat(res[3], 64)
		if err != nil {
			return nil, "", err
		}

		return Point{lat, lon, h}, "WGS84", nil
	}

	return nil, "", fmt.Errorf("%w: unrecognized coordinate string %q", ErrInvalidInput, s)
}
