package dataprocessing

import (
	"regexp"
	"strconv"
	"strings"

	"checkna/internal/config"
	"checkna/pkg/contracts/domain"
)

var (
	bracketedTokenRe = regexp.MustCompile(`\[.*?\]\s*`)
	nonAlphanumRe    = regexp.MustCompile(`\W+`)
)

// RegionLabel derives a filesystem-safe label for a kabupaten from its
// id_kab annotation, e.g. "[7205] Kota Bandung" -> "Kota_Bandung". Falls
// back to the numeric code when no usable name exists.
func RegionLabel(t *domain.Table, kabCode int) string {
	name := regionName(t, kabCode)

	clean := bracketedTokenRe.ReplaceAllString(name, "")
	clean = strings.TrimSpace(clean)
	clean = nonAlphanumRe.ReplaceAllString(clean, "_")

	if clean == "" {
		return strconv.Itoa(kabCode)
	}
	return clean
}

// regionName returns the raw id_kab value of the first row matching the code
func regionName(t *domain.Table, kabCode int) string {
	fallback := strconv.Itoa(kabCode)

	kabCol, ok := t.Column(config.KabColumn)
	if !ok {
		return fallback
	}
	idCol, ok := t.Column(config.IDKabColumn)
	if !ok {
		return fallback
	}

	for i, cell := range kabCol.Cells {
		if !cellEqualsCode(cell, kabCode) {
			continue
		}
		if i < len(idCol.Cells) && idCol.Cells[i].Kind != domain.CellEmpty {
			return idCol.Cells[i].String()
		}
		return fallback
	}
	return fallback
}

// FormatAnimalName turns an animal token into its display form,
// e.g. "ayam_kampung" -> "Ayam Kampung"
func FormatAnimalName(name string) string {
	words := strings.Split(name, "_")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
