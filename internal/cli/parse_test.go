package cli

import (
	"testing"

	"github.com/paulmach/orb"

	"github.com/matzehuels/streetplot/pkg/errors"
	"github.com/matzehuels/streetplot/pkg/geo"
)

func TestParseBBox(t *testing.T) {
	box, err := parseBBox("52.53,52.49,13.43,13.37")
	if err != nil {
		t.Fatalf("parseBBox: %v", err)
	}
	want := geo.BBox{North: 52.53, South: 52.49, East: 13.43, West: 13.37}
	if *box != want {
		t.Errorf("parseBBox = %+v, want %+v", *box, want)
	}
}

func TestParseBBoxInvalid(t *testing.T) {
	for _, s := range []string{"", "1,2,3", "1,2,3,4,5", "a,b,c,d"} {
		if _, err := parseBBox(s); !errors.Is(err, errors.ErrCodeInvalidInput) {
			t.Errorf("parseBBox(%q) error = %v, want INVALID_INPUT", s, err)
		}
	}
}

func TestParsePoint(t *testing.T) {
	p, err := parsePoint("13.40, 52.52")
	if err != nil {
		t.Fatalf("parsePoint: %v", err)
	}
	if p != (orb.Point{13.40, 52.52}) {
		t.Errorf("parsePoint = %v, want [13.40, 52.52]", p)
	}

	if _, err := parsePoint("13.40"); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("single value error = %v, want INVALID_INPUT", err)
	}
}

func TestParseRoute(t *testing.T) {
	route, err := parseRoute("a, b ,c")
	if err != nil {
		t.Fatalf("parseRoute: %v", err)
	}
	if len(route) != 3 || route[0] != "a" || route[2] != "c" {
		t.Errorf("parseRoute = %v, want [a b c]", route)
	}

	for _, s := range []string{"", "a", "a,,"} {
		if _, err := parseRoute(s); !errors.Is(err, errors.ErrCodeInvalidRoute) {
			t.Errorf("parseRoute(%q) error = %v, want INVALID_ROUTE", s, err)
		}
	}
}
