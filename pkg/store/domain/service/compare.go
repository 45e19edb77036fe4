package service

import "storefront/pkg/store/domain/model"

// minComparisonSize is the smallest selection worth rendering side by side.
const minComparisonSize = 2

type CompareService interface {
	// ToggleCompare removes the product if selected, otherwise appends it.
	// Appending beyond the configured limit is a no-op.
	ToggleCompare(product model.Product)
	ClearComparison()
	Selection() []model.Product
	// CanCompare reports whether enough products are selected for a
	// meaningful comparison.
	CanCompare() bool
}

// NewCompareService builds a comparison list capped at limit entries;
// limit 0 disables the cap.
func NewCompareService(limit int, dispatcher EventDispatcher) CompareService {
	return &compareService{limit: limit, dispatcher: dispatcher}
}

type compareService struct {
	selection  []model.Product
	limit      int
	dispatcher EventDispatcher
}

func (s *compareService) ToggleCompare(product model.Product) {
	for i := range s.selection {
		if s.selection[i].ID == product.ID {
			s.selection = append(s.selection[:i], s.selection[i+1:]...)
			_ = s.dispatcher.Dispatch(model.ComparisonToggled{ProductID: product.ID, Selected: false})
			return
		}
	}

	if s.limit > 0 && len(s.selection) >= s.limit {
		return
	}
	s.selection = append(s.selection, product.Clone())
	_ = s.dispatcher.Dispatch(model.ComparisonToggled{ProductID: product.ID, Selected: true})
}

func (s *compareService) ClearComparison() {
	if len(s.selection) == 0 {
		return
	}
	s.selection = nil
	_ = s.dispatcher.Dispatch(model.ComparisonCleared{})
}

func (s *compareService) Selection() []model.Product {
	return s.selection
}

func (s *compareService) CanCompare() bool {
	return len(s.selection) >= minComparisonSize
}
