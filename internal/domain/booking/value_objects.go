package booking

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	DateLayout         = "2006-01-02"
	MaxGuestNameLength = 100
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Date is a calendar day. The zero Date is not a valid day.
type Date struct {
	t time.Time // midnight UTC
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to its calendar day in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return Date{t: t}, nil
}

func (d Date) IsZero() bool           { return d.t.IsZero() }
func (d Date) Time() time.Time        { return d.t }
func (d Date) Before(other Date) bool { return d.t.Before(other.t) }
func (d Date) After(other Date) bool  { return d.t.After(other.t) }
func (d Date) Equal(other Date) bool  { return d.t.Equal(other.t) }
func (d Date) AddDays(n int) Date     { return Date{t: d.t.AddDate(0, 0, n)} }

// DaysUntil returns the number of whole days from d to other (negative when other is earlier).
func (d Date) DaysUntil(other Date) int {
	return int(other.t.Sub(d.t).Hours() / 24)
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(DateLayout)
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(b []byte) error {
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// StayRange is the half-open interval [checkIn, checkOut).
type StayRange struct {
	checkIn  Date
	checkOut Date
}

func NewStayRange(checkIn, checkOut Date) StayRange {
	return StayRange{checkIn: checkIn, checkOut: checkOut}
}

func ParseStayRange(checkIn, checkOut string) (StayRange, error) {
	in, err := ParseDate(checkIn)
	if err != nil {
		return StayRange{}, err
	}
	out, err := ParseDate(checkOut)
	if err != nil {
		return StayRange{}, err
	}
	return NewStayRange(in, out), nil
}

func (r StayRange) CheckIn() Date  { return r.checkIn }
func (r StayRange) CheckOut() Date { return r.checkOut }

// Nights is ceil(checkOut - checkIn) in days; day granularity makes it exact.
func (r StayRange) Nights() int {
	return r.checkIn.DaysUntil(r.checkOut)
}

// Overlaps reports whether two half-open ranges intersect. A check-out on day X
// and a check-in on day X do not overlap.
func (r StayRange) Overlaps(other StayRange) bool {
	return r.checkIn.Before(other.checkOut) && other.checkIn.Before(r.checkOut)
}

// ValidateAt checks the range against today in the order past date, inverted range, stay length.
func (r StayRange) ValidateAt(today Date, maxNights int) error {
	if r.checkIn.IsZero() || r.checkOut.IsZero() {
		return ErrInvalidDate
	}
	if r.checkIn.Before(today) {
		return ErrPastDate
	}
	if !r.checkOut.After(r.checkIn) {
		return ErrInvertedRange
	}
	if r.Nights() > maxNights {
		return ErrStayTooLong
	}
	return nil
}

// Key is the literal form of the range, e.g. "2025-03-01/2025-03-05".
func (r StayRange) Key() string {
	return r.checkIn.String() + "/" + r.checkOut.String()
}

type Money struct {
	amount int64
}

func NewMoney(amount int64) Money {
	return Money{amount: amount}
}

func (m Money) Amount() int64 {
	return m.amount
}

func (m Money) Times(n int) Money {
	return Money{amount: m.amount * int64(n)}
}

func (m Money) IsNegative() bool {
	return m.amount < 0
}

type Guest struct {
	name  string
	email string
}

func NewGuest(name, email string) (Guest, error) {
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > MaxGuestNameLength {
		return Guest{}, ErrInvalidGuestName
	}
	email = strings.TrimSpace(email)
	if !emailPattern.MatchString(email) {
		return Guest{}, ErrInvalidEmail
	}
	return Guest{name: name, email: email}, nil
}

func (g Guest) Name() string  { return g.name }
func (g Guest) Email() string { return g.email }

// NameContains is a case-insensitive substring match on the guest name.
func (g Guest) NameContains(fragment string) bool {
	return strings.Contains(strings.ToLower(g.name), strings.ToLower(fragment))
}
