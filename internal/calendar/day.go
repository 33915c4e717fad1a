package calendar

import "fmt"

// Day is a single JDN with its date in both calendars.
type Day struct {
	JDN       JDN           `json:"jdn" yaml:"jdn"`
	Gregorian GregorianDate `json:"gregorian" yaml:"gregorian"`
	Ethiopic  EthiopicDate  `json:"ethiopic" yaml:"ethiopic"`
	Era       Era           `json:"era" yaml:"era"`
	Weekday   Weekday       `json:"weekday" yaml:"weekday"`
}

// DayOf describes jdn, labelling the Ethiopian date with GuessEra.
func DayOf(jdn JDN) Day {
	return DayInEra(jdn, GuessEra(jdn))
}

// DayInEra describes jdn with the Ethiopian date counted from era.
func DayInEra(jdn JDN, era Era) Day {
	return Day{
		JDN:       jdn,
		Gregorian: JDNToGregorian(jdn),
		Ethiopic:  JDNToEthiopic(jdn, era),
		Era:       era,
		Weekday:   DayOfWeek(jdn),
	}
}

// MarshalText encodes the weekday by name.
func (w Weekday) MarshalText() ([]byte, error) {
	return []byte(w.String()), nil
}

// UnmarshalText accepts the names MarshalText produces.
func (w *Weekday) UnmarshalText(text []byte) error {
	for i, name := range weekdayNames {
		if name == string(text) {
			*w = Weekday(i)
			return nil
		}
	}
	return fmt.Errorf("unknown weekday %q", text)
}
