package output

import (
	"fmt"

	"github.com/mcscylla/portfolio-simulator/pkg/money"
)

// FormatCurrency formats a float as sterling with 2 decimals.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount float64) string { return money.New(amount).Format() }

// FormatPercentage formats a decimal fraction as a percentage with 2 decimals.
func FormatPercentage(fraction float64) string { return fmt.Sprintf("%.2f%%", fraction*100) }

// FormatPercentagePoints formats a value already expressed in percent.
func FormatPercentagePoints(points float64) string { return fmt.Sprintf("%.2f%%", points) }
