package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"math"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
)

// detectionFrame повторяет тело запроса POST /missions/:id/detections.
type detectionFrame struct {
	Label       string  `json:"label"`
	Score       float64 `json:"score"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	TimestampMS int64   `json:"timestamp_ms"`
}

// labelProfile задает частоту метки в потоке и диапазон её score.
type labelProfile struct {
	label    string
	weight   float64
	scoreMin float64
	scoreMax float64
}

// Фоновые метки преобладают; person и fire редки, chemical единичен.
var profiles = []labelProfile{
	{label: "vehicle", weight: 0.40, scoreMin: 0.30, scoreMax: 0.95},
	{label: "animal", weight: 0.25, scoreMin: 0.20, scoreMax: 0.80},
	{label: "person", weight: 0.15, scoreMin: 0.40, scoreMax: 0.99},
	{label: "people", weight: 0.05, scoreMin: 0.40, scoreMax: 0.95},
	{label: "fire", weight: 0.12, scoreMin: 0.50, scoreMax: 0.99},
	{label: "chemical", weight: 0.03, scoreMin: 0.60, scoreMax: 0.97},
}

const metersPerDegree = 111320.0

// track — блуждающий источник детекций. Несколько кадров подряд от одного
// трека попадают в соседние точки, что и дает движку персистентность.
type track struct {
	profile labelProfile
	lat     float64
	lon     float64
}

type simulator struct {
	rng    *rand.Rand
	tracks []*track

	centerLat float64
	centerLon float64
	spreadM   float64
}

func newSimulator(rng *rand.Rand, centerLat, centerLon, spreadM float64, trackCount int) *simulator {
	s := &simulator{
		rng:       rng,
		centerLat: centerLat,
		centerLon: centerLon,
		spreadM:   spreadM,
	}
	for i := 0; i < trackCount; i++ {
		s.tracks = append(s.tracks, s.spawnTrack())
	}
	return s
}

func (s *simulator) spawnTrack() *track {
	return &track{
		profile: s.pickProfile(),
		lat:     s.centerLat + s.offsetDeg(),
		lon:     s.centerLon + s.offsetDeg()/math.Cos(s.centerLat*math.Pi/180),
	}
}

func (s *simulator) pickProfile() labelProfile {
	var total float64
	for _, p := range profiles {
		total += p.weight
	}
	roll := s.rng.Float64() * total
	for _, p := range profiles {
		roll -= p.weight
		if roll <= 0 {
			return p
		}
	}
	return profiles[0]
}

func (s *simulator) offsetDeg() float64 {
	return (s.rng.Float64() - 0.5) * 2 * s.spreadM / metersPerDegree
}

// nextFrame выбирает трек, сдвигает его на несколько метров и выдает кадр
func (s *simulator) nextFrame() detectionFrame {
	i := s.rng.Intn(len(s.tracks))

	// Изредка трек уходит из кадра и на его месте появляется новый
	if s.rng.Float64() < 0.02 {
		s.tracks[i] = s.spawnTrack()
	}
	tr := s.tracks[i]

	stepM := (s.rng.Float64() - 0.5) * 20
	tr.lat += stepM / metersPerDegree
	tr.lon += stepM / (metersPerDegree * math.Cos(tr.lat*math.Pi/180))

	p := tr.profile
	return detectionFrame{
		Label:       p.label,
		Score:       p.scoreMin + s.rng.Float64()*(p.scoreMax-p.scoreMin),
		Latitude:    tr.lat,
		Longitude:   tr.lon,
		TimestampMS: time.Now().UnixMilli(),
	}
}

func postFrame(client *http.Client, endpoint, apiKey string, frame detectionFrame) (string, error) {
	body, err := json.Marshal(frame)
	if err != nil {
		return "", fmt.Errorf("failed to marshal frame: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", apiKey)

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("unexpected status %d: %s", resp.StatusCode, respBody)
	}

	var out struct {
		Decision string `json:"decision"`
	}
	if err := json.Unmarshal(respBody, &out); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	return out.Decision, nil
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080/api/v1", "Base API URL")
	missionID := flag.String("mission", "", "Mission ID to feed")
	apiKey := flag.String("key", "", "API key for the missions API")
	centerLat := flag.Float64("lat", 55.7500, "Feed center latitude")
	centerLon := flag.Float64("lon", 37.6100, "Feed center longitude")
	spreadM := flag.Float64("spread", 250, "Scatter radius around the center, meters")
	trackCount := flag.Int("tracks", 4, "Number of concurrent detection tracks")
	interval := flag.Duration("interval", 500*time.Millisecond, "Delay between frames")
	seed := flag.Int64("seed", 0, "Random seed, 0 = time-based")
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	if *missionID == "" {
		log.Fatal("Flag -mission is required")
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	sim := newSimulator(rng, *centerLat, *centerLon, *spreadM, *trackCount)
	client := &http.Client{Timeout: 5 * time.Second}
	endpoint := fmt.Sprintf("%s/missions/%s/detections", *baseURL, *missionID)

	log.WithFields(logrus.Fields{
		"endpoint": endpoint,
		"interval": interval.String(),
		"tracks":   *trackCount,
		"seed":     *seed,
	}).Info("Perception feed simulator started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()

	var sent, failed int
	for {
		select {
		case <-quit:
			log.WithFields(logrus.Fields{
				"sent":   sent,
				"failed": failed,
			}).Info("Perception feed simulator stopped")
			return
		case <-ticker.C:
			frame := sim.nextFrame()
			decision, err := postFrame(client, endpoint, *apiKey, frame)
			if err != nil {
				failed++
				log.WithError(err).Warn("Failed to deliver detection frame")
				continue
			}
			sent++
			log.WithFields(logrus.Fields{
				"label":    frame.Label,
				"score":    fmt.Sprintf("%.2f", frame.Score),
				"decision": decision,
			}).Info("Frame delivered")
		}
	}
}
