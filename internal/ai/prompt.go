package ai

import (
	"fmt"
	"strings"
)

// orNA подставляет "N/A" вместо пустого значения.
func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}

	return s
}

func numOrNA[T int | float64](v T) string {
	if v == 0 {
		return "N/A"
	}

	return fmt.Sprintf("%v", v)
}

// buildPrompt собирает пользовательский промпт риелтора: паспорт
// объекта, список удобств и инструкция по тону текста.
func buildPrompt(f ListingFacts) string {
	var b strings.Builder

	b.WriteString("You are a professional real estate agent. Generate a compelling 150-200 word description for a property with these details:\n\n")
	fmt.Fprintf(&b, "Property Title: %s\n", orNA(f.Title))
	fmt.Fprintf(&b, "Property Type: %s\n", orNA(f.PropertyType))
	fmt.Fprintf(&b, "Listing Type: For %s\n", orNA(f.ListingType))
	fmt.Fprintf(&b, "Price: %s BDT\n", numOrNA(f.Price))
	fmt.Fprintf(&b, "Location: %s, %s, %s\n", orNA(f.Address), orNA(f.City), orNA(f.State))
	fmt.Fprintf(&b, "Size: %s square feet\n", numOrNA(f.Area))
	fmt.Fprintf(&b, "Bedrooms: %s\n", numOrNA(f.Bedrooms))
	fmt.Fprintf(&b, "Bathrooms: %s\n\n", numOrNA(f.Bathrooms))

	b.WriteString("Key Features:\n")
	if f.Features.Parking {
		b.WriteString("- Ample parking space\n")
	}
	if f.Features.Garden {
		b.WriteString("- Beautiful garden area\n")
	}
	if f.Features.AirConditioning {
		b.WriteString("- Fully air-conditioned\n")
	}
	if f.Features.Furnished {
		b.WriteString("- Fully furnished\n")
	}
	if f.Features.Pool {
		b.WriteString("- Swimming pool\n")
	}

	b.WriteString("\nWrite an engaging description that highlights the property's best features, location advantages, and potential uses. Use persuasive language suitable for a property listing.")

	return b.String()
}
