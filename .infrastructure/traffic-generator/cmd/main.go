package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Центр и разброс координат, вокруг которых генерируются заявки.
const (
	centerLat = 55.7558
	centerLng = 37.6173
	spread    = 0.05
)

var itemClasses = []string{"document", "small", "medium", "large", "bulky"}

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "traffic_generator_requests_total",
		Help: "Отправленные запросы по сценарию и коду ответа",
	}, []string{"scenario", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "traffic_generator_request_duration_seconds",
		Help:    "Длительность запроса в секундах",
		Buckets: []float64{0.01, 0.05, 0.1, 0.3, 0.5, 1, 2},
	}, []string{"scenario"})
)

func main() {
	target := flag.String("target", "http://localhost:8080", "lastmile base URL")
	interval := flag.Duration("interval", 500*time.Millisecond, "pause between iterations")
	racers := flag.Int("racers", 5, "couriers racing for one delivery")
	flag.Parse()

	http.Handle("/metrics", promhttp.Handler())
	go func() {
		log.Println(http.ListenAndServe(":2112", nil)) //nolint:gosec // локальный генератор
	}()

	client := &http.Client{Timeout: 5 * time.Second}
	for {
		quote(client, *target)
		acceptRace(client, *target, *racers)
		time.Sleep(*interval)
	}
}

func randomPoint() (float64, float64) {
	return centerLat + (rand.Float64()-0.5)*spread, centerLng + (rand.Float64()-0.5)*spread
}

func quote(client *http.Client, target string) {
	fromLat, fromLng := randomPoint()
	toLat, toLng := randomPoint()
	url := fmt.Sprintf("%s/quote?from_lat=%f&from_lng=%f&to_lat=%f&to_lng=%f&item_class=%s",
		target, fromLat, fromLng, toLat, toLng, itemClasses[rand.IntN(len(itemClasses))])

	do(client, "quote", http.MethodGet, url, nil)
}

// acceptRace создает заявку и запускает за нее гонку курьеров: ровно один
// должен получить 200, остальные 409.
func acceptRace(client *http.Client, target string, racers int) {
	fromLat, fromLng := randomPoint()
	toLat, toLng := randomPoint()
	body := fmt.Sprintf(`{"customer_id":%d,"pickup":{"lat":%f,"lng":%f},"drop":{"lat":%f,"lng":%f},`+
		`"item_class":"small","vehicle":"bicycle","urgency":"standard","scheduling":"immediate","payment_method":"card"}`,
		1+rand.IntN(1000), fromLat, fromLng, toLat, toLng)

	resp := do(client, "create", http.MethodPost, target+"/delivery", []byte(body))
	id, ok := deliveryID(resp)
	if !ok {
		return
	}

	done := make(chan struct{}, racers)
	for i := range racers {
		go func() {
			defer func() { done <- struct{}{} }()
			accept := fmt.Sprintf(`{"courier_id":%d}`, i+1)
			do(client, "accept", http.MethodPost, target+"/delivery/"+strconv.FormatInt(id, 10)+"/accept", []byte(accept))
		}()
	}
	for range racers {
		<-done
	}
}

func do(client *http.Client, scenario, method, url string, body []byte) []byte {
	req, err := http.NewRequest(method, url, bytes.NewReader(body))
	if err != nil {
		log.Printf("%s: build request: %v", scenario, err)
		return nil
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := client.Do(req)
	requestDuration.WithLabelValues(scenario).Observe(time.Since(start).Seconds())
	if err != nil {
		requestsTotal.WithLabelValues(scenario, "error").Inc()
		return nil
	}
	defer resp.Body.Close()

	requestsTotal.WithLabelValues(scenario, strconv.Itoa(resp.StatusCode)).Inc()
	data, _ := io.ReadAll(resp.Body)
	return data
}

func deliveryID(body []byte) (int64, bool) {
	var created struct {
		Delivery struct {
			ID int64 `json:"id"`
		} `json:"delivery"`
	}
	if len(body) == 0 || json.Unmarshal(body, &created) != nil || created.Delivery.ID == 0 {
		return 0, false
	}
	return created.Delivery.ID, true
}
