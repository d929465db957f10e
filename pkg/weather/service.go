package weather

import "sync"

// Service wraps the API client with the shared in-process cache. A per-key
// in-flight guard makes sure racing requests for the identical coordinate
// pair issue only one upstream fetch.
type Service struct {
	client *Client
	cache  *Cache

	mu       sync.Mutex
	inflight map[string]chan struct{}
}

// NewService creates a weather service around the given client. One
// Service is constructed per process and shared by all callers.
func NewService(client *Client) *Service {
	return &Service{
		client:   client,
		cache:    NewCache(),
		inflight: make(map[string]chan struct{}),
	}
}

// Report returns the cached or freshly fetched weather report for a
// coordinate pair. Both upstream calls (current + forecast) happen behind
// a single cache entry.
func (s *Service) Report(lat, lon string) (*Report, error) {
	key := Key(lat, lon)

	for {
		if report, ok := s.cache.Get(key); ok {
			return report, nil
		}

		s.mu.Lock()
		ch, busy := s.inflight[key]
		if busy {
			// Another request is already fetching this pair; wait for it
			// and re-check the cache.
			s.mu.Unlock()
			<-ch
			continue
		}

		ch = make(chan struct{})
		s.inflight[key] = ch
		s.mu.Unlock()

		report, err := s.fetch(lat, lon)
		if err == nil {
			s.cache.Set(key, report)
		}

		s.mu.Lock()
		delete(s.inflight, key)
		s.mu.Unlock()
		close(ch)

		return report, err
	}
}

func (s *Service) fetch(lat, lon string) (*Report, error) {
	current, err := s.client.FetchCurrent(lat, lon)
	if err != nil {
		return nil, err
	}

	forecast, err := s.client.FetchForecast(lat, lon)
	if err != nil {
		return nil, err
	}

	return &Report{
		Current:  *current,
		Forecast: forecast,
	}, nil
}
