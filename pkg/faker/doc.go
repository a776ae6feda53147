// Package faker supplies locale-aware pseudo-realistic primitive values:
// names, emails, addresses, phone numbers, dates, words, and numbers.
//
// A Faker is a pure function of its random source. Construct one with
// NewSeeded for reproducible fixtures, or New for a randomly seeded
// instance. Locales are matched with golang.org/x/text/language; unknown
// locales fall back to en-US.
package faker
