package services

import (
	"context"
	"encoding/json"
	"math/rand"
	"net/http"
	"time"

	"github.com/HifricAldar/cloud-computing/apperrors"
	"go.uber.org/zap"
)

type NewsItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	ImageURL    string `json:"image_url"`
}

// NewsService pulls the Zetizen food-and-traveling feed and serves one
// random article per call.
type NewsService struct {
	url    string
	client *http.Client
	log    *zap.Logger
	pick   func(n int) int
}

func NewNewsService(url string, log *zap.Logger) *NewsService {
	return &NewsService{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
		log:    log,
		pick:   rand.Intn,
	}
}

type newsFeedResponse struct {
	Data []struct {
		Title   string `json:"title"`
		Content string `json:"content"`
		Link    string `json:"link"`
		Image   string `json:"image"`
	} `json:"data"`
}

func (s *NewsService) FetchZetizenNews(ctx context.Context) (*NewsItem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		s.log.Error("news fetch failed", zap.Error(err))
		return nil, apperrors.Upstream("failed to fetch news")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.log.Error("news fetch failed", zap.Int("status", resp.StatusCode))
		return nil, apperrors.Upstream("failed to fetch news")
	}

	var feed newsFeedResponse
	if err := json.NewDecoder(resp.Body).Decode(&feed); err != nil {
		s.log.Error("news decode failed", zap.Error(err))
		return nil, apperrors.Upstream("failed to fetch news")
	}
	if len(feed.Data) == 0 {
		return nil, apperrors.Upstream("failed to fetch news")
	}

	item := feed.Data[s.pick(len(feed.Data))]
	return &NewsItem{
		Title:       item.Title,
		Description: item.Content,
		URL:         item.Link,
		ImageURL:    item.Image,
	}, nil
}
