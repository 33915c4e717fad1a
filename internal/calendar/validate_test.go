package calendar

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidGregorianDate(t *testing.T) {
	tests := []struct {
		y, m, d int
		want    bool
	}{
		{2024, 2, 29, true},
		{2023, 2, 29, false},
		{2024, 13, 1, false},
		{2024, 1, 32, false},
		{1900, 2, 29, false},
		{2000, 2, 29, true},
		{2024, 0, 1, false},
		{2024, 1, 0, false},
		{2024, -1, 1, false},
		{2024, 4, 31, false},
		{-4, 2, 29, true},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, IsValidGregorianDate(tc.y, tc.m, tc.d), "IsValidGregorianDate(%d, %d, %d)", tc.y, tc.m, tc.d)
	}
}

func TestIsValidEthiopicDate(t *testing.T) {
	tests := []struct {
		y, m, d int
		want    bool
	}{
		{2017, 1, 30, true},
		{2017, 13, 5, true},
		{2017, 13, 6, false},
		{2015, 13, 6, true},
		{2017, 14, 1, false},
		{2017, 1, 31, false},
		{2017, 0, 1, false},
		{2017, 1, 0, false},
		{-1, 13, 6, true},
		{-2, 13, 6, false},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, IsValidEthiopicDate(tc.y, tc.m, tc.d), "IsValidEthiopicDate(%d, %d, %d)", tc.y, tc.m, tc.d)
	}
}

func TestIsGregorianLeap(t *testing.T) {
	leap := map[int]bool{2024: true, 2023: false, 1900: false, 2000: true, 1600: true, 1700: false, 0: true, -100: false, -400: true}
	for year, want := range leap {
		assert.Equal(t, want, IsGregorianLeap(year), "IsGregorianLeap(%d)", year)
	}
}

func TestLeapConsistency(t *testing.T) {
	for y := -1000; y <= 3000; y++ {
		require.Equal(t, IsGregorianLeap(y), IsValidGregorianDate(y, 2, 29), "year %d", y)
		require.Equal(t, floorMod(int64(y), 4) == 3, IsValidEthiopicDate(y, Pagume, 6), "year %d", y)
	}
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 29, DaysInGregorianMonth(2024, 2))
	assert.Equal(t, 28, DaysInGregorianMonth(2023, 2))
	assert.Equal(t, 30, DaysInGregorianMonth(2023, 11))
	assert.Equal(t, 0, DaysInGregorianMonth(2023, 13))

	assert.Equal(t, 30, DaysInEthiopicMonth(2017, 12))
	assert.Equal(t, 5, DaysInEthiopicMonth(2017, Pagume))
	assert.Equal(t, 6, DaysInEthiopicMonth(2015, Pagume))
	assert.Equal(t, 0, DaysInEthiopicMonth(2015, 14))
}

func TestValidate(t *testing.T) {
	err := EthiopicDate{2017, 13, 6}.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidDate))
	assert.True(t, IsInvalidDate(err))

	var invalid *InvalidDateError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, Ethiopic, invalid.Calendar)
	assert.Equal(t, "day", invalid.Field)
	assert.Equal(t, 5, invalid.Max)
	assert.Equal(t, "invalid ethiopic date 2017-13-06: day 6 out of range [1,5]", err.Error())

	err = GregorianDate{2024, 13, 1}.Validate()
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "month", invalid.Field)
	assert.Equal(t, "invalid gregorian date 2024-13-01: month 13 out of range [1,12]", err.Error())

	assert.NoError(t, GregorianDate{2024, 2, 29}.Validate())
	assert.NoError(t, EthiopicDate{2015, 13, 6}.Validate())
}

func TestCheckedConversions(t *testing.T) {
	g, err := ToGregorian(EthiopicDate{2017, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, GregorianDate{2024, 9, 11}, g)

	g, err = ToGregorianInEra(EthiopicDate{5500, 1, 1}, AmeteAlem)
	require.NoError(t, err)
	assert.Equal(t, GregorianDate{7, 8, 28}, g)

	e, err := ToEthiopic(GregorianDate{2024, 9, 11})
	require.NoError(t, err)
	assert.Equal(t, EthiopicDate{2017, 1, 1}, e)

	_, err = ToGregorian(EthiopicDate{2017, 13, 6})
	assert.ErrorIs(t, err, ErrInvalidDate)
	_, err = ToGregorianInEra(EthiopicDate{2017, 0, 1}, AmeteMihret)
	assert.ErrorIs(t, err, ErrInvalidDate)
	_, err = ToEthiopic(GregorianDate{2023, 2, 29})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestParseDates(t *testing.T) {
	e, err := ParseEthiopicDate("2015-13-06")
	require.NoError(t, err)
	assert.Equal(t, EthiopicDate{2015, 13, 6}, e)
	assert.Equal(t, "2015-13-06", e.String())

	g, err := ParseGregorianDate("8-8-27")
	require.NoError(t, err)
	assert.Equal(t, GregorianDate{8, 8, 27}, g)
	assert.Equal(t, "0008-08-27", g.String())

	g, err = ParseGregorianDate("-4713-11-24")
	require.NoError(t, err)
	assert.Equal(t, GregorianDate{-4713, 11, 24}, g)
	assert.Equal(t, "-4713-11-24", g.String())

	for _, bad := range []string{"", "2024/09/11", "2024-9", "abc-01-01", "2024-02-30", "2017-13-06x"} {
		_, err := ParseGregorianDate(bad)
		assert.ErrorIs(t, err, ErrInvalidDate, "ParseGregorianDate(%q)", bad)
	}
	_, err = ParseEthiopicDate("2017-13-06")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestDayOf(t *testing.T) {
	day := DayOf(GregorianToJDN(2024, 9, 11))
	assert.Equal(t, JDN(2460565), day.JDN)
	assert.Equal(t, GregorianDate{2024, 9, 11}, day.Gregorian)
	assert.Equal(t, EthiopicDate{2017, 1, 1}, day.Ethiopic)
	assert.Equal(t, AmeteMihret, day.Era)
	assert.Equal(t, Wednesday, day.Weekday)

	ancient := DayInEra(GregorianToJDN(7, 8, 28), AmeteAlem)
	assert.Equal(t, EthiopicDate{5500, 1, 1}, ancient.Ethiopic)
}

func TestTextMarshaling(t *testing.T) {
	text, err := AmeteAlem.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "AA", string(text))

	var era Era
	require.NoError(t, era.UnmarshalText([]byte("AM")))
	assert.Equal(t, AmeteMihret, era)
	assert.Error(t, era.UnmarshalText([]byte("XX")))

	var w Weekday
	require.NoError(t, w.UnmarshalText([]byte("Friday")))
	assert.Equal(t, Friday, w)
	assert.Error(t, w.UnmarshalText([]byte("Funday")))
}
