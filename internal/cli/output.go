package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/abiywondimu5758/ethiopian-date-converter/internal/calendar"
)

// Output formats accepted by --output.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

func checkFormat(format string) error {
	switch format {
	case formatText, formatJSON, formatYAML:
		return nil
	}
	return fmt.Errorf("unknown output format %q: use text, json or yaml", format)
}

// printer writes command results in the selected format.
type printer struct {
	w      io.Writer
	format string
}

// print writes v as JSON or YAML, or calls text for the text format.
func (p printer) print(v any, text func(w io.Writer) error) error {
	switch p.format {
	case formatJSON:
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(p.w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return text(p.w)
	}
}

// dayView is the printed form of a calendar day.
type dayView struct {
	JDN       int64  `json:"jdn" yaml:"jdn"`
	Gregorian string `json:"gregorian" yaml:"gregorian"`
	Ethiopic  string `json:"ethiopic" yaml:"ethiopic"`
	Era       string `json:"era" yaml:"era"`
	Weekday   string `json:"weekday" yaml:"weekday"`
}

func newDayView(d calendar.Day) dayView {
	return dayView{
		JDN:       int64(d.JDN),
		Gregorian: d.Gregorian.String(),
		Ethiopic:  d.Ethiopic.String(),
		Era:       d.Era.String(),
		Weekday:   d.Weekday.String(),
	}
}

func (v dayView) writeText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Gregorian: %s\nEthiopian: %s %s\nJDN:       %d\nWeekday:   %s\n",
		v.Gregorian, v.Ethiopic, v.Era, v.JDN, v.Weekday)
	return err
}
