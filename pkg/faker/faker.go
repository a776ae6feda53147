package faker

import (
	"fmt"
	"math"
	mathrand "math/rand/v2"
	"strconv"
	"strings"
	"time"
)

// Faker generates pseudo-realistic primitive values for a single locale.
// It is a pure function of its random source and is not safe for
// concurrent use.
type Faker struct {
	rng    *mathrand.Rand
	data   *dataset
	locale string
}

// New returns a Faker for the given locale with a randomly seeded source.
func New(locale string) *Faker {
	return newFaker(locale, mathrand.New(mathrand.NewPCG(mathrand.Uint64(), mathrand.Uint64())))
}

// NewSeeded returns a Faker with a deterministic source. The same locale
// and seed always produce the same value sequence.
func NewSeeded(locale string, seed uint64) *Faker {
	return newFaker(locale, mathrand.New(mathrand.NewPCG(seed, 0)))
}

func newFaker(locale string, rng *mathrand.Rand) *Faker {
	key := resolveLocale(locale)
	return &Faker{
		rng:    rng,
		data:   datasets[key],
		locale: key,
	}
}

// Locale returns the resolved locale tag this Faker draws from.
func (f *Faker) Locale() string {
	return f.locale
}

// Name returns a full personal name.
func (f *Faker) Name() string {
	return f.PickOne(f.data.firstNames) + " " + f.PickOne(f.data.lastNames)
}

// Email returns a plausible email address.
func (f *Faker) Email() string {
	return f.PickOne(f.data.emailLocals) + strconv.Itoa(f.rng.IntN(1000)) + "@" + f.PickOne(f.data.emailDomains)
}

// Address returns a single-line postal address. Components are joined with
// comma separators, never newlines.
func (f *Faker) Address() string {
	idx := f.rng.IntN(len(f.data.cities))
	return fmt.Sprintf("%d %s, %s, %s %05d",
		f.rng.IntN(9999)+1,
		f.PickOne(f.data.streets),
		f.data.cities[idx],
		f.data.regions[idx],
		f.rng.IntN(99999))
}

// Phone returns a phone number in the locale's format.
func (f *Faker) Phone() string {
	var sb strings.Builder
	for _, c := range f.data.phoneFormat {
		if c == '#' {
			sb.WriteByte(byte('0' + f.rng.IntN(10)))
		} else {
			sb.WriteRune(c)
		}
	}
	return sb.String()
}

// DateOfBirth returns a date-only UTC time for an adult between 18 and 90
// years old.
func (f *Faker) DateOfBirth() time.Time {
	years := f.IntRange(18, 90)
	days := f.IntRange(0, 364)
	t := time.Now().UTC().AddDate(-years, 0, -days)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Boolean returns a uniform random boolean.
func (f *Faker) Boolean() bool {
	return f.rng.IntN(2) == 1
}

// Word returns a single word.
func (f *Faker) Word() string {
	return f.PickOne(f.data.words)
}

// Paragraph returns a short paragraph of three sentences.
func (f *Faker) Paragraph() string {
	parts := make([]string, 3)
	for i := range parts {
		parts[i] = f.PickOne(f.data.sentences)
	}
	return strings.Join(parts, " ")
}

// Float returns a random float with up to two digits before the decimal
// point, rounded to the given precision. When positive is set the result
// is always greater than zero.
func (f *Faker) Float(precision int, positive bool) float64 {
	v := roundTo(f.rng.Float64()*100, precision)
	if positive {
		if v == 0 {
			v = math.Pow(10, -float64(precision))
		}
		return v
	}
	if f.Boolean() {
		return -v
	}
	return v
}

// IntRange returns a uniform random integer in [min, max] inclusive.
func (f *Faker) IntRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + f.rng.IntN(max-min+1)
}

// PickOne returns a uniformly chosen element, or "" for an empty slice.
func (f *Faker) PickOne(elements []string) string {
	if len(elements) == 0 {
		return ""
	}
	return elements[f.rng.IntN(len(elements))]
}

// PickIndex returns a uniform random index in [0, n). It is the primitive
// callers use to pick from arbitrary collections.
func (f *Faker) PickIndex(n int) int {
	if n <= 0 {
		return 0
	}
	return f.rng.IntN(n)
}

func roundTo(v float64, precision int) float64 {
	p := math.Pow(10, float64(precision))
	return math.Round(v*p) / p
}
