package service

import (
	"encoding/json"
	"errors"

	log "github.com/sirupsen/logrus"

	"storefront/pkg/store/domain/model"
)

var ErrInvalidRating = errors.New("rating must be an integer between 1 and 5")

// Persistence keys, fixed by the stored data format.
const (
	ratingsKey       = "productRatings"
	ratedProductsKey = "userRatedProducts"
)

const minSeedSamples = 5

type RatingService interface {
	// AddRating records a rating for the product. Rating a product the
	// current user has already rated is a silent no-op; an out-of-range
	// rating is rejected with ErrInvalidRating.
	AddRating(productID string, rating int) error
	RatingInfo(productID string) model.RatingInfo
	HasUserRated(productID string) bool
}

// NewRatingService loads persisted review data, seeding a synthetic dataset
// on the very first run. Products with a positive sales count receive
// max(5, salesCount/15) samples skewed towards 5 stars. A failing or corrupt
// backend degrades the store to empty in-memory data; it never re-seeds over
// existing persisted data.
func NewRatingService(products []model.Product, store model.KeyValueStore, sampler model.Sampler, dispatcher EventDispatcher) RatingService {
	s := &ratingService{
		store:      store,
		dispatcher: dispatcher,
		ratings:    make(map[string][]int),
		rated:      make(map[string]bool),
	}
	s.load(products, sampler)
	return s
}

type ratingService struct {
	store      model.KeyValueStore
	dispatcher EventDispatcher
	ratings    map[string][]int
	rated      map[string]bool
}

func (s *ratingService) load(products []model.Product, sampler model.Sampler) {
	raw, ok, err := s.store.Get(ratingsKey)
	switch {
	case err != nil:
		log.WithError(err).Warn("rating storage unavailable, continuing in-memory")
	case !ok:
		s.seed(products, sampler)
	default:
		if err := json.Unmarshal([]byte(raw), &s.ratings); err != nil {
			log.WithError(err).Warn("persisted ratings are malformed, continuing in-memory")
			s.ratings = make(map[string][]int)
		}
	}

	raw, ok, err = s.store.Get(ratedProductsKey)
	if err != nil || !ok {
		return
	}
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		log.WithError(err).Warn("persisted rated-product set is malformed, continuing in-memory")
		return
	}
	for _, id := range ids {
		s.rated[id] = true
	}
}

func (s *ratingService) seed(products []model.Product, sampler model.Sampler) {
	var total int
	for _, product := range products {
		if product.SalesCount <= 0 {
			continue
		}
		count := product.SalesCount / 15
		if count < minSeedSamples {
			count = minSeedSamples
		}
		samples := make([]int, 0, count)
		for i := 0; i < count; i++ {
			samples = append(samples, drawSeedRating(sampler))
		}
		s.ratings[product.ID] = samples
		total += count
	}

	s.persistRatings()
	_ = s.dispatcher.Dispatch(model.RatingsSeeded{ProductCount: len(s.ratings), SampleCount: total})
}

// drawSeedRating skews seeded reviews positive: 70% five stars, 25% four,
// 5% three.
func drawSeedRating(sampler model.Sampler) int {
	r := sampler.Float64()
	switch {
	case r < 0.70:
		return 5
	case r < 0.95:
		return 4
	default:
		return 3
	}
}

func (s *ratingService) AddRating(productID string, rating int) error {
	if rating < 1 || rating > 5 {
		return ErrInvalidRating
	}
	if s.rated[productID] {
		return nil
	}

	s.ratings[productID] = append(s.ratings[productID], rating)
	s.rated[productID] = true
	s.persistRatings()
	s.persistRated()

	_ = s.dispatcher.Dispatch(model.RatingAdded{ProductID: productID, Rating: rating})
	return nil
}

func (s *ratingService) RatingInfo(productID string) model.RatingInfo {
	samples := s.ratings[productID]
	if len(samples) == 0 {
		return model.RatingInfo{}
	}

	var sum int
	for _, sample := range samples {
		sum += sample
	}
	return model.RatingInfo{
		Average: float64(sum) / float64(len(samples)),
		Count:   len(samples),
	}
}

func (s *ratingService) HasUserRated(productID string) bool {
	return s.rated[productID]
}

func (s *ratingService) persistRatings() {
	raw, err := json.Marshal(s.ratings)
	if err == nil {
		err = s.store.Set(ratingsKey, string(raw))
	}
	if err != nil {
		log.WithError(err).Warn("failed to persist ratings")
	}
}

func (s *ratingService) persistRated() {
	ids := make([]string, 0, len(s.rated))
	for id := range s.rated {
		ids = append(ids, id)
	}
	raw, err := json.Marshal(ids)
	if err == nil {
		err = s.store.Set(ratedProductsKey, string(raw))
	}
	if err != nil {
		log.WithError(err).Warn("failed to persist rated-product set")
	}
}
