package transport

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"storefront/pkg/store/catalog"
	"storefront/pkg/store/domain/model"
	"storefront/pkg/store/domain/service"
	"storefront/pkg/store/localization"
)

type Handler struct {
	catalog   *catalog.Catalog
	cart      service.CartService
	wishlist  service.WishlistService
	rating    service.RatingService
	session   service.SessionService
	compare   service.CompareService
	bundle    service.BundleService
	checkout  service.CheckoutService
	localizer *localization.Localizer
}

func Router(
	cat *catalog.Catalog,
	cart service.CartService,
	wishlist service.WishlistService,
	rating service.RatingService,
	session service.SessionService,
	compare service.CompareService,
	bundle service.BundleService,
	checkout service.CheckoutService,
	localizer *localization.Localizer,
) http.Handler {
	h := &Handler{
		catalog:   cat,
		cart:      cart,
		wishlist:  wishlist,
		rating:    rating,
		session:   session,
		compare:   compare,
		bundle:    bundle,
		checkout:  checkout,
		localizer: localizer,
	}

	r := mux.NewRouter()
	s := r.PathPrefix("/api/v1").Subrouter()

	s.HandleFunc("/products", h.listProducts).Methods(http.MethodGet)
	s.HandleFunc("/products/popular", h.listPopularProducts).Methods(http.MethodGet)
	s.HandleFunc("/products/search", h.searchProducts).Methods(http.MethodGet)
	s.HandleFunc("/products/{ID}", h.getProduct).Methods(http.MethodGet)
	s.HandleFunc("/products/{ID}/rating", h.getRating).Methods(http.MethodGet)
	s.HandleFunc("/products/{ID}/rating", h.addRating).Methods(http.MethodPost)
	s.HandleFunc("/accessories", h.listAccessories).Methods(http.MethodGet)
	s.HandleFunc("/branches", h.listBranches).Methods(http.MethodGet)

	s.HandleFunc("/cart", h.getCart).Methods(http.MethodGet)
	s.HandleFunc("/cart", h.clearCart).Methods(http.MethodDelete)
	s.HandleFunc("/cart/items", h.addToCart).Methods(http.MethodPost)
	s.HandleFunc("/cart/items/{ID}", h.updateQuantity).Methods(http.MethodPut)
	s.HandleFunc("/cart/items/{ID}", h.removeFromCart).Methods(http.MethodDelete)

	s.HandleFunc("/wishlist", h.getWishlist).Methods(http.MethodGet)
	s.HandleFunc("/wishlist/{ID}", h.addToWishlist).Methods(http.MethodPost)
	s.HandleFunc("/wishlist/{ID}", h.removeFromWishlist).Methods(http.MethodDelete)

	s.HandleFunc("/compare", h.getComparison).Methods(http.MethodGet)
	s.HandleFunc("/compare", h.clearComparison).Methods(http.MethodDelete)
	s.HandleFunc("/compare/{ID}", h.toggleCompare).Methods(http.MethodPost)

	s.HandleFunc("/bundle", h.getBundle).Methods(http.MethodGet)
	s.HandleFunc("/bundle", h.resetBundle).Methods(http.MethodDelete)
	s.HandleFunc("/bundle/foundation", h.selectFoundation).Methods(http.MethodPost)
	s.HandleFunc("/bundle/accessories/{ID}", h.toggleAccessory).Methods(http.MethodPost)
	s.HandleFunc("/bundle/commit", h.commitBundle).Methods(http.MethodPost)

	s.HandleFunc("/session", h.getSession).Methods(http.MethodGet)
	s.HandleFunc("/session", h.login).Methods(http.MethodPost)
	s.HandleFunc("/session", h.logout).Methods(http.MethodDelete)
	s.HandleFunc("/orders", h.listOrders).Methods(http.MethodGet)
	s.HandleFunc("/checkout", h.placeOrder).Methods(http.MethodPost)

	s.HandleFunc("/localization", h.updateLocalization).Methods(http.MethodPut)

	return logMiddleware(r)
}

func (h *Handler) listProducts(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.Products())
}

func (h *Handler) listPopularProducts(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.SortedByPopularity())
}

func (h *Handler) searchProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	writeJSON(w, http.StatusOK, h.catalog.Search(query))
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.findProduct(w, r)
	if err != nil {
		return
	}
	writeJSON(w, http.StatusOK, product)
}

func (h *Handler) listAccessories(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.Accessories())
}

func (h *Handler) listBranches(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Branches())
}

func (h *Handler) getRating(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["ID"]
	writeJSON(w, http.StatusOK, ratingResponse{
		Rating:    h.rating.RatingInfo(productID),
		UserRated: h.rating.HasUserRated(productID),
	})
}

func (h *Handler) addRating(w http.ResponseWriter, r *http.Request) {
	product, err := h.findProduct(w, r)
	if err != nil {
		return
	}

	var body struct {
		Rating int `json:"rating"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	if err := h.rating.AddRating(product.ID, body.Rating); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, ratingResponse{
		Rating:    h.rating.RatingInfo(product.ID),
		UserRated: h.rating.HasUserRated(product.ID),
	})
}

func (h *Handler) getCart(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.cartResponse())
}

func (h *Handler) clearCart(w http.ResponseWriter, _ *http.Request) {
	h.cart.ClearCart()
	writeJSON(w, http.StatusOK, h.cartResponse())
}

func (h *Handler) addToCart(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ProductID string `json:"productId"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	product, err := h.catalog.Find(body.ProductID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	h.cart.AddToCart(product)
	writeJSON(w, http.StatusOK, h.cartResponse())
}

func (h *Handler) updateQuantity(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Quantity int `json:"quantity"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	h.cart.UpdateQuantity(mux.Vars(r)["ID"], body.Quantity)
	writeJSON(w, http.StatusOK, h.cartResponse())
}

func (h *Handler) removeFromCart(w http.ResponseWriter, r *http.Request) {
	h.cart.RemoveFromCart(mux.Vars(r)["ID"])
	writeJSON(w, http.StatusOK, h.cartResponse())
}

func (h *Handler) getWishlist(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, wishlistResponse{
		Items: h.wishlist.Items(),
		Count: h.wishlist.ItemCount(),
	})
}

func (h *Handler) addToWishlist(w http.ResponseWriter, r *http.Request) {
	product, err := h.findProduct(w, r)
	if err != nil {
		return
	}
	h.wishlist.AddToWishlist(product)
	writeJSON(w, http.StatusOK, wishlistResponse{
		Items: h.wishlist.Items(),
		Count: h.wishlist.ItemCount(),
	})
}

func (h *Handler) removeFromWishlist(w http.ResponseWriter, r *http.Request) {
	h.wishlist.RemoveFromWishlist(mux.Vars(r)["ID"])
	writeJSON(w, http.StatusOK, wishlistResponse{
		Items: h.wishlist.Items(),
		Count: h.wishlist.ItemCount(),
	})
}

func (h *Handler) getComparison(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, comparisonResponse{
		Products:   h.compare.Selection(),
		CanCompare: h.compare.CanCompare(),
	})
}

func (h *Handler) clearComparison(w http.ResponseWriter, _ *http.Request) {
	h.compare.ClearComparison()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) toggleCompare(w http.ResponseWriter, r *http.Request) {
	product, err := h.findProduct(w, r)
	if err != nil {
		return
	}
	h.compare.ToggleCompare(product)
	writeJSON(w, http.StatusOK, comparisonResponse{
		Products:   h.compare.Selection(),
		CanCompare: h.compare.CanCompare(),
	})
}

func (h *Handler) getBundle(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.bundleResponse())
}

func (h *Handler) resetBundle(w http.ResponseWriter, _ *http.Request) {
	h.bundle.Reset()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) selectFoundation(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ProductID string `json:"productId"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	product, err := h.catalog.Find(body.ProductID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	if err := h.bundle.SelectFoundation(product); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, h.bundleResponse())
}

func (h *Handler) toggleAccessory(w http.ResponseWriter, r *http.Request) {
	product, err := h.findProduct(w, r)
	if err != nil {
		return
	}
	if err := h.bundle.ToggleAccessory(product); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, h.bundleResponse())
}

func (h *Handler) commitBundle(w http.ResponseWriter, _ *http.Request) {
	if err := h.bundle.CommitBundle(h.cart); err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	writeJSON(w, http.StatusOK, h.cartResponse())
}

func (h *Handler) getSession(w http.ResponseWriter, _ *http.Request) {
	user := h.session.CurrentUser()
	if user == nil {
		http.Error(w, "not logged in", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	user := h.session.Login(body.Name, body.Email)
	writeJSON(w, http.StatusCreated, user)
}

func (h *Handler) logout(w http.ResponseWriter, _ *http.Request) {
	h.session.Logout()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listOrders(w http.ResponseWriter, _ *http.Request) {
	user := h.session.CurrentUser()
	if user == nil {
		http.Error(w, "not logged in", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, user.OrderHistory)
}

func (h *Handler) placeOrder(w http.ResponseWriter, _ *http.Request) {
	order, err := h.checkout.PlaceOrder(h.cart.Snapshot(), h.cart.Subtotal())
	if errors.Is(err, service.ErrEmptyCart) {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.session.AddOrderToHistory(*order)
	h.cart.ClearCart()
	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) updateLocalization(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Locale   string `json:"locale"`
		Currency string `json:"currency"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	if body.Locale != "" {
		if err := h.localizer.SetLocale(localization.Locale(body.Locale)); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}
	if body.Currency != "" {
		if err := h.localizer.SetCurrency(localization.Currency(body.Currency)); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) findProduct(w http.ResponseWriter, r *http.Request) (model.Product, error) {
	product, err := h.catalog.Find(mux.Vars(r)["ID"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
	}
	return product, err
}

type cartResponse struct {
	Items             []model.CartItem `json:"items"`
	Subtotal          int64            `json:"subtotal"`
	FormattedSubtotal string           `json:"formattedSubtotal"`
	ItemCount         int              `json:"itemCount"`
}

func (h *Handler) cartResponse() cartResponse {
	subtotal := h.cart.Subtotal()
	return cartResponse{
		Items:             h.cart.Items(),
		Subtotal:          subtotal,
		FormattedSubtotal: h.localizer.FormatPrice(subtotal),
		ItemCount:         h.cart.ItemCount(),
	}
}

type bundleResponse struct {
	Step  service.BundleStep   `json:"step"`
	Quote *service.BundleQuote `json:"quote,omitempty"`
}

func (h *Handler) bundleResponse() bundleResponse {
	resp := bundleResponse{Step: h.bundle.Step()}
	if quote, err := h.bundle.Quote(); err == nil {
		resp.Quote = &quote
	}
	return resp
}

type ratingResponse struct {
	Rating    model.RatingInfo `json:"rating"`
	UserRated bool             `json:"userRated"`
}

type wishlistResponse struct {
	Items []model.Product `json:"items"`
	Count int             `json:"count"`
}

type comparisonResponse struct {
	Products   []model.Product `json:"products"`
	CanCompare bool            `json:"canCompare"`
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	b, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err = io.WriteString(w, string(b)); err != nil {
		log.WithField("err", err).Error("write response")
	}
}

func logMiddleware(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.WithFields(log.Fields{
			"method":     r.Method,
			"url":        r.URL,
			"remoteAddr": r.RemoteAddr,
			"userAgent":  r.UserAgent(),
		}).Info("got a new request")
		h.ServeHTTP(w, r)
	})
}
