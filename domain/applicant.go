package domain

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/bxcodec/faker/v4"
)

// PaymentCertificateFields is the number of values the payment certificate cover sheet takes.
const PaymentCertificateFields = 17

// GenerateApplicant creates random values for the payment certificate cover sheet,
// in the order the form expects them:
//
//	0 organisation INN, 1 KPP, 2 certificate number, 3 reporting year,
//	4 organisation name, 5 taxpayer first name, 6 taxpayer patronymic,
//	7 taxpayer INN, 8 birth date, 9 correction number, 10 amount,
//	11 taxpayer surname, 12-14 patient surname/first name/patronymic,
//	15 issue date, 16 page count.
func GenerateApplicant() []any {
	year := time.Now().Year() - 1

	return []any{
		digits(10),
		digits(9),
		fmt.Sprintf("%04d/%d", rand.IntN(10000), year),
		year,
		fmt.Sprintf("ОБЩЕСТВО С ОГРАНИЧЕННОЙ ОТВЕТСТВЕННОСТЬЮ <<%s>>", upper(faker.Word())),
		upper(faker.FirstName()),
		upper(faker.FirstName()),
		digits(12),
		randomDate(1950, 2005),
		0,
		(rand.IntN(150) + 1) * 1000,
		upper(faker.LastName()),
		upper(faker.LastName()),
		upper(faker.FirstName()),
		upper(faker.FirstName()),
		randomDate(year+1, year+1),
		rand.IntN(3) + 1,
	}
}

// digits returns an n-digit string without a leading zero.
func digits(n int) string {
	var b strings.Builder
	b.WriteByte(byte('1' + rand.IntN(9)))
	for range n - 1 {
		b.WriteByte(byte('0' + rand.IntN(10)))
	}
	return b.String()
}

// randomDate returns a DDMMYYYY date within [fromYear, toYear].
func randomDate(fromYear, toYear int) string {
	start := time.Date(fromYear, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(toYear+1, time.January, 1, 0, 0, 0, 0, time.UTC)
	days := int(end.Sub(start).Hours() / 24)
	return start.AddDate(0, 0, rand.IntN(days)).Format("02012006")
}

func upper(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
