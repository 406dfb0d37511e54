package cli

import (
	"strconv"

	"github.com/alexanderramin/eduplan/internal/domain"
	"github.com/alexanderramin/eduplan/internal/export"
	"github.com/spf13/pflag"
)

// dayFlag accepts 0-6 or a day name in French or English.
type dayFlag struct {
	day int
}

var _ pflag.Value = (*dayFlag)(nil)

func newDayFlag(def int) *dayFlag { return &dayFlag{day: def} }

func (f *dayFlag) String() string { return strconv.Itoa(f.day) }
func (f *dayFlag) Type() string   { return "day" }

func (f *dayFlag) Set(s string) error {
	d, err := domain.ParseDay(s)
	if err != nil {
		return err
	}
	f.day = d
	return nil
}

// formatFlag accepts a registered export format name.
type formatFlag struct {
	format export.Format
}

var _ pflag.Value = (*formatFlag)(nil)

func (f *formatFlag) String() string { return string(f.format) }
func (f *formatFlag) Type() string   { return "format" }

func (f *formatFlag) Set(s string) error {
	format, err := export.ParseFormat(s)
	if err != nil {
		return err
	}
	f.format = format
	return nil
}
