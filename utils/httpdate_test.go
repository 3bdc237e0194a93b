package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type httpDateSuite struct {
	suite.Suite
}

func (h *httpDateSuite) TestFormatHTTPDate() {
	t := time.Date(2015, 10, 21, 7, 28, 0, 0, time.UTC)
	h.Equal("Wed, 21 Oct 2015 07:28:00 GMT", FormatHTTPDate(t))

	// non-UTC input is converted without mutating the caller's value
	loc := time.FixedZone("UTC+2", 2*60*60)
	local := time.Date(2015, 10, 21, 9, 28, 0, 0, loc)
	h.Equal("Wed, 21 Oct 2015 07:28:00 GMT", FormatHTTPDate(local))
	h.Equal(loc, local.Location(), "caller's value keeps its zone")
}

type parseHTTPDateTest struct {
	in       string
	expected time.Time
	hasError bool
	message  string
}

func (h *httpDateSuite) TestParseHTTPDate() {
	fixdate := time.Date(2015, 10, 21, 7, 28, 0, 0, time.UTC)
	tests := []parseHTTPDateTest{
		{
			in:       "Wed, 21 Oct 2015 07:28:00 GMT",
			expected: fixdate,
			message:  "IMF-fixdate",
		},
		{
			in:       "2015-10-21T07:28:00Z",
			expected: fixdate,
			message:  "RFC 3339",
		},
		{
			in:       "2015-10-21",
			expected: time.Date(2015, 10, 21, 0, 0, 0, 0, time.UTC),
			message:  "bare calendar date",
		},
		{
			in:       "1445412480",
			expected: fixdate,
			message:  "unix epoch seconds",
		},
		{
			in:       "not a date",
			hasError: true,
			message:  "unparseable input",
		},
		{
			in:       "",
			hasError: true,
			message:  "empty input",
		},
	}

	for _, t := range tests {
		got, err := ParseHTTPDate(t.in)
		if t.hasError {
			h.Error(err, t.message)
			h.EqualError(err, ErrBadHTTPDate, t.message)
			continue
		}
		h.NoError(err, t.message)
		h.True(t.expected.Equal(got), "%s: expected %s got %s", t.message, t.expected, got)
	}
}

func TestHTTPDate(t *testing.T) {
	suite.Run(t, new(httpDateSuite))
}
