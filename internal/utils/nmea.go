package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/adrianmo/go-nmea"
	"github.com/ecofleet/fleet-telemetry/internal/pkg/models"
)

var (
	// ErrNoSatelliteFix is returned for RMC sentences flagged void or GGA sentences without a fix
	ErrNoSatelliteFix = errors.New("nmea sentence carries no satellite fix")
	// ErrUnsupportedSentence is returned for well formed sentences other than RMC and GGA
	ErrUnsupportedSentence = errors.New("unsupported nmea sentence")
)

// IsNMEASentence reports whether payload looks like a raw NMEA 0183 sentence
func IsNMEASentence(payload []byte) bool {
	s := strings.TrimSpace(string(payload))
	return strings.HasPrefix(s, "$") || strings.HasPrefix(s, "!")
}

// ParseNMEAFix decodes an RMC or GGA sentence into a fix
func ParseNMEAFix(raw string) (models.Fix, error) {
	sentence, err := nmea.Parse(strings.TrimSpace(raw))
	if err != nil {
		return models.Fix{}, fmt.Errorf("failed to parse nmea sentence: %w", err)
	}

	var fix models.Fix
	switch s := sentence.(type) {
	case nmea.RMC:
		if s.Validity != nmea.ValidRMC {
			return models.Fix{}, ErrNoSatelliteFix
		}
		fix = models.Fix{Latitude: s.Latitude, Longitude: s.Longitude}
	case nmea.GGA:
		if s.FixQuality == nmea.Invalid {
			return models.Fix{}, ErrNoSatelliteFix
		}
		fix = models.Fix{Latitude: s.Latitude, Longitude: s.Longitude}
	default:
		return models.Fix{}, fmt.Errorf("%w: %s", ErrUnsupportedSentence, sentence.DataType())
	}

	fix.Source = models.FixSourceNMEA
	if err := fix.Validate(); err != nil {
		return models.Fix{}, err
	}
	return fix, nil
}
