package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
	"venuefinder-backend/models"

	"gorm.io/gorm"
)

// Public Overpass instances, tried in order until one answers.
var defaultOverpassServers = []string{
	"https://overpass-api.de/api/interpreter",
	"https://overpass.kumi.systems/api/interpreter",
	"https://overpass.openstreetmap.fr/api/interpreter",
}

const overpassTimeout = 90 * time.Second

// ImportService pulls venues for a city/category from OpenStreetMap's
// Overpass API and writes them into the venue repository. It deduplicates
// on (name, city) so reruns are safe.
type ImportService struct {
	DB      *gorm.DB
	Client  *http.Client
	Servers []string

	// Pause between successive Overpass queries; the public servers
	// rate-limit aggressive clients.
	Pause time.Duration
}

func NewImportService(db *gorm.DB) *ImportService {
	return &ImportService{
		DB:      db,
		Client:  &http.Client{Timeout: overpassTimeout},
		Servers: defaultOverpassServers,
		Pause:   2 * time.Second,
	}
}

type overpassResponse struct {
	Elements []overpassElement `json:"elements"`
}

type overpassElement struct {
	Type   string            `json:"type"`
	ID     int64             `json:"id"`
	Lat    float64           `json:"lat"`
	Lon    float64           `json:"lon"`
	Center *overpassCenter   `json:"center"`
	Tags   map[string]string `json:"tags"`
}

type overpassCenter struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// FetchVenues imports up to limit venues per OSM tag kind for the given
// city and category slug. Returns the number of venues created.
func (s *ImportService) FetchVenues(city, categorySlug string, limit int) (int, error) {
	var category models.Category
	if err := s.DB.Where("slug = ?", categorySlug).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, fmt.Errorf("no category with slug %q; run seed first", categorySlug)
		}
		return 0, err
	}

	log.Printf("Looking up %s...", city)
	areaID, err := s.lookupAreaID(city)
	if err != nil {
		return 0, fmt.Errorf("could not find area id for %s: %w", city, err)
	}
	log.Printf("Found %s (area %d)", city, areaID)

	// OSM maps most venue kinds as amenity=<x>, some as shop=<x>.
	tagKeys := []string{"amenity", "shop"}

	created := 0
	for i, key := range tagKeys {
		if i > 0 {
			time.Sleep(s.Pause)
		}

		query := fmt.Sprintf(`
[out:json][timeout:90];
area(%d)->.searchArea;
(
  node["%s"="%s"](area.searchArea);
  way["%s"="%s"](area.searchArea);
);
out center %d;
`, areaID, key, categorySlug, key, categorySlug, limit)

		body, err := s.postWithFailover(query)
		if err != nil {
			log.Printf("Overpass query for %s=%s failed: %v", key, categorySlug, err)
			continue
		}

		var resp overpassResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			log.Printf("Bad Overpass response for %s=%s: %v", key, categorySlug, err)
			continue
		}

		for _, element := range resp.Elements {
			saved, err := s.saveElement(element, &category, city)
			if err != nil {
				log.Printf("Skipping element %d: %v", element.ID, err)
				continue
			}
			if saved {
				created++
			}
		}
	}

	return created, nil
}

// lookupAreaID resolves a city name to an Overpass area id.
func (s *ImportService) lookupAreaID(city string) (int64, error) {
	query := fmt.Sprintf(`
[out:json][timeout:90];
area["name"="%s"]["boundary"="administrative"];
out ids 1;
`, city)

	body, err := s.postWithFailover(query)
	if err != nil {
		return 0, err
	}

	var resp overpassResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return 0, err
	}
	if len(resp.Elements) == 0 {
		return 0, fmt.Errorf("no administrative area named %q", city)
	}
	return resp.Elements[0].ID, nil
}

// postWithFailover tries each configured Overpass server in turn,
// returning the first 200 response body.
func (s *ImportService) postWithFailover(query string) ([]byte, error) {
	var lastErr error
	for _, server := range s.Servers {
		log.Printf("Querying %s ...", server)

		resp, err := s.Client.PostForm(server, url.Values{"data": {query}})
		if err != nil {
			log.Printf("Server %s failed: %v, trying next...", server, err)
			lastErr = err
			continue
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}
		if resp.StatusCode != http.StatusOK {
			log.Printf("Server %s returned %d, trying next...", server, resp.StatusCode)
			lastErr = fmt.Errorf("server returned %d", resp.StatusCode)
			time.Sleep(s.Pause)
			continue
		}
		return body, nil
	}
	if lastErr == nil {
		lastErr = errors.New("no overpass servers configured")
	}
	return nil, lastErr
}

func (s *ImportService) saveElement(element overpassElement, category *models.Category, city string) (bool, error) {
	name := strings.TrimSpace(element.Tags["name"])
	if name == "" {
		return false, nil // unnamed POIs are not worth listing
	}

	lat, lon := element.Lat, element.Lon
	if element.Center != nil {
		lat, lon = element.Center.Lat, element.Center.Lon
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return false, models.ErrCoordinatesOutOfRange
	}

	// Existence check on (name, city) keeps reruns from duplicating rows.
	var existing models.Venue
	err := s.DB.Where("LOWER(name) = ? AND LOWER(city) = ?",
		strings.ToLower(name), strings.ToLower(city)).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	venue := models.Venue{
		CategoryID:   category.ID,
		Name:         name,
		Description:  element.Tags["cuisine"],
		City:         city,
		Area:         firstTag(element.Tags, "addr:suburb", "addr:district", "addr:neighbourhood"),
		Address:      buildAddress(element.Tags),
		Latitude:     lat,
		Longitude:    lon,
		PriceRange:   models.PriceModerate,
		PhoneNumber:  firstTag(element.Tags, "phone", "contact:phone"),
		Website:      firstTag(element.Tags, "website", "contact:website"),
		OpeningHours: openingHoursFromTags(element.Tags),
		IsActive:     true,
	}
	if err := s.DB.Create(&venue).Error; err != nil {
		return false, err
	}
	return true, nil
}

func firstTag(tags map[string]string, keys ...string) string {
	for _, key := range keys {
		if value := strings.TrimSpace(tags[key]); value != "" {
			return value
		}
	}
	return ""
}

func buildAddress(tags map[string]string) string {
	parts := []string{}
	if street := tags["addr:street"]; street != "" {
		if number := tags["addr:housenumber"]; number != "" {
			parts = append(parts, number+" "+street)
		} else {
			parts = append(parts, street)
		}
	}
	if cityTag := tags["addr:city"]; cityTag != "" {
		parts = append(parts, cityTag)
	}
	return strings.Join(parts, ", ")
}

// OSM encodes opening hours as a single formatted string; it is kept
// verbatim under "raw" rather than lossily parsed into weekday ranges.
func openingHoursFromTags(tags map[string]string) models.JSONB {
	hours := models.JSONB{}
	if raw := tags["opening_hours"]; raw != "" {
		hours["raw"] = raw
	}
	return hours
}
