package manor

import (
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{250 * time.Millisecond, "250ms"},
		{999 * time.Millisecond, "999ms"},
		{time.Second, "1s"},
		{12500 * time.Millisecond, "13s"},
		{59 * time.Second, "59s"},
		{60 * time.Second, "1m"},
		{91 * time.Second, "1m 31s"},
		{-3 * time.Second, "0ms"},
	}
	for _, c := range cases {
		if got := FormatDuration(c.d); got != c.want {
			t.Fatalf("FormatDuration(%v) = %q, want %q", c.d, got, c.want)
		}
	}
}
