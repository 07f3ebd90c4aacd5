// Package sample generates messy customer datasets for demonstrating
// and testing the cleaning pipeline. Generation is fully deterministic
// for a given seed; the random source is local, never global.
package sample

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/dbsmedya/goclean/internal/dataset"
)

var (
	firstNames = []string{
		"John", "Jane", "Bob", "Alice", "Charlie", "Diana",
		"Edward", "Fiona", "George", "Hannah", "Ian", "Julia",
	}
	lastNames = []string{
		"Smith", "Johnson", "Williams", "Brown", "Jones",
		"Garcia", "Miller", "Davis", "Rodriguez", "Martinez",
	}
	cities = []string{
		"New York", "Los Angeles", "Chicago", "Houston", "Phoenix",
		"Philadelphia", "San Antonio", "San Diego", "Dallas", "San Jose",
	}
	statuses = []string{"active", "inactive", "pending", "suspended"}
	domains  = []string{"gmail.com", "yahoo.com", "hotmail.com", "company.com"}

	// messyLabels replace the clean column names when defects are enabled.
	messyLabels = []string{
		"Customer ID",
		" First Name ",
		"Last_Name",
		"Email Address",
		"AGE",
		"Signup Date",
		"Purchase-Amount",
		"City",
		"Status",
	}
)

// Generate produces a customer dataset with numRows base rows. With
// messy enabled it then injects realistic defects: duplicated rows,
// missing cells, whitespace padding, case inconsistencies, extreme
// outliers, mixed date formats, and inconsistent column labels.
func Generate(numRows int, seed int64, messy bool) *dataset.Dataset {
	rng := rand.New(rand.NewSource(seed))

	ids := make([]dataset.Value, numRows)
	first := make([]dataset.Value, numRows)
	last := make([]dataset.Value, numRows)
	email := make([]dataset.Value, numRows)
	age := make([]dataset.Value, numRows)
	signup := make([]dataset.Value, numRows)
	amount := make([]dataset.Value, numRows)
	city := make([]dataset.Value, numRows)
	status := make([]dataset.Value, numRows)

	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < numRows; i++ {
		fn := firstNames[rng.Intn(len(firstNames))]
		ln := lastNames[rng.Intn(len(lastNames))]
		ids[i] = dataset.Number(float64(i + 1))
		first[i] = dataset.Text(fn)
		last[i] = dataset.Text(ln)
		email[i] = dataset.Text(fmt.Sprintf("%s.%s%d@%s",
			strings.ToLower(fn), strings.ToLower(ln), i, domains[rng.Intn(len(domains))]))
		age[i] = dataset.Number(float64(18 + rng.Intn(62)))
		signup[i] = dataset.Text(formatSignupDate(start.AddDate(0, 0, rng.Intn(1460)), rng, messy))
		amount[i] = dataset.Number(float64(rng.Intn(99000)+1000) / 100)
		city[i] = dataset.Text(cities[rng.Intn(len(cities))])
		status[i] = dataset.Text(statuses[rng.Intn(len(statuses))])
	}

	d := &dataset.Dataset{Columns: []dataset.Column{
		{Name: "Customer ID", Values: ids},
		{Name: "First Name", Values: first},
		{Name: "Last Name", Values: last},
		{Name: "Email", Values: email},
		{Name: "Age", Values: age},
		{Name: "Signup Date", Values: signup},
		{Name: "Purchase Amount", Values: amount},
		{Name: "City", Values: city},
		{Name: "Status", Values: status},
	}}

	if messy {
		d = injectDefects(d, rng)
	}
	return d
}

// formatSignupDate mixes date formats when defects are enabled.
func formatSignupDate(t time.Time, rng *rand.Rand, messy bool) string {
	if messy {
		switch rng.Intn(10) {
		case 0, 1, 2:
			return t.Format("02/01/2006")
		case 3, 4:
			return t.Format("01-02-2006")
		}
	}
	return t.Format("2006-01-02")
}

func injectDefects(d *dataset.Dataset, rng *rand.Rand) *dataset.Dataset {
	base := d.NumRows()

	// Duplicate 5% of rows, appended at the end.
	rows := make([]int, base)
	for i := range rows {
		rows[i] = i
	}
	for i := 0; i < base/20; i++ {
		rows = append(rows, rng.Intn(base))
	}
	out := d.SelectRows(rows)
	n := out.NumRows()

	// Knock out 10% of cells in a few columns.
	missingTargets := []string{"Email", "Age", "City", "Purchase Amount"}
	for i := 0; i < n/10; i++ {
		c := out.Column(missingTargets[rng.Intn(len(missingTargets))])
		c.Values[rng.Intn(n)] = dataset.Missing()
	}

	// Pad 15% of text cells with whitespace.
	textTargets := []string{"First Name", "Last Name", "Email", "City", "Status"}
	for _, name := range textTargets {
		c := out.Column(name)
		for i := 0; i < n*15/100; i++ {
			r := rng.Intn(n)
			if c.Values[r].Kind() == dataset.KindText {
				c.Values[r] = dataset.Text("  " + c.Values[r].Str() + "  ")
			}
		}
	}

	// Upper-case 10% of statuses.
	statusCol := out.Column("Status")
	for i := 0; i < n/10; i++ {
		r := rng.Intn(n)
		if statusCol.Values[r].Kind() == dataset.KindText {
			statusCol.Values[r] = dataset.Text(strings.ToUpper(statusCol.Values[r].Str()))
		}
	}

	// Plant a handful of extreme outliers.
	extremeAges := []float64{5, 150, -10, 200}
	extremeAmounts := []float64{0.01, 50000, -100}
	ageCol := out.Column("Age")
	amountCol := out.Column("Purchase Amount")
	for i := 0; i < 10 && i < n; i++ {
		r := rng.Intn(n)
		ageCol.Values[r] = dataset.Number(extremeAges[rng.Intn(len(extremeAges))])
		amountCol.Values[r] = dataset.Number(extremeAmounts[rng.Intn(len(extremeAmounts))])
	}

	// Mess up the column labels.
	if err := out.Rename(messyLabels); err != nil {
		// Label set is fixed and unique; this cannot happen.
		panic(err)
	}
	return out
}
