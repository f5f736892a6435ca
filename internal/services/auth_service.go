package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"shopit/internal/models"
	"shopit/internal/repositories"
	"shopit/pkg/rabbitmq"
)

// Errors signaled by the session store. Every mutation that needs an active
// user reports ErrNotSignedIn explicitly rather than silently doing nothing.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotSignedIn        = errors.New("no user is signed in")
	ErrOrderNotFound      = errors.New("order not found")
	ErrAddressNotFound    = errors.New("address not found")
	ErrInvalidStatus      = errors.New("invalid order status")
	ErrIllegalTransition  = errors.New("illegal order status transition")
)

const defaultAvatar = "https://images.unsplash.com/photo-1535713875002-d1d0cf377fde?q=80&w=1780&auto=format&fit=crop"

// AuthService is the session and order store: it holds the authenticated
// identity with its address book, wishlist and order history, synthesizes new
// orders and their tracking timelines, and issues JWTs for the HTTP surface.
// At most one user is active at a time. The active user persists to storage
// after every mutation so a restart re-reads it as ground truth.
type AuthService struct {
	mu         sync.RWMutex
	user       *models.User
	directory  repositories.UserDirectory
	storage    repositories.Storage
	mqClient   *rabbitmq.Client
	jwtSecret  []byte
	tokenDurat time.Duration
}

// NewAuthService creates an AuthService hydrated from storage. Absent or
// malformed persisted state starts signed out. The RabbitMQ client may be nil,
// in which case order events are skipped.
func NewAuthService(directory repositories.UserDirectory, storage repositories.Storage, mqClient *rabbitmq.Client, jwtSecret string) *AuthService {
	s := &AuthService{
		directory:  directory,
		storage:    storage,
		mqClient:   mqClient,
		jwtSecret:  []byte(jwtSecret),
		tokenDurat: 24 * time.Hour,
	}
	s.hydrate()
	return s
}

func (s *AuthService) hydrate() {
	raw, found, err := s.storage.Get(repositories.StorageKeyUser)
	if err != nil {
		log.Printf("Warning: failed to read persisted user: %v", err)
		return
	}
	if !found {
		return
	}

	var user models.User
	if err := json.Unmarshal(raw, &user); err != nil {
		log.Printf("Warning: ignoring malformed persisted user: %v", err)
		return
	}
	if user.ID == "" {
		return
	}
	s.user = &user
}

// persistLocked writes the active user to storage, or deletes the entry when
// signed out. Callers must hold the write lock.
func (s *AuthService) persistLocked() {
	if s.user == nil {
		if err := s.storage.Delete(repositories.StorageKeyUser); err != nil {
			log.Printf("Warning: failed to delete persisted user: %v", err)
		}
		return
	}

	raw, err := json.Marshal(s.user)
	if err == nil {
		err = s.storage.Set(repositories.StorageKeyUser, raw)
	}
	if err != nil {
		log.Printf("Warning: failed to persist user: %v", err)
	}
}

// SignIn authenticates against the credential directory. On success the
// active user is replaced entirely, persisted, and a JWT is returned. The
// password hash never reaches the public user. A failed sign-in leaves any
// previously active user unchanged.
func (s *AuthService) SignIn(email, password string) (string, error) {
	credential, err := s.directory.GetByEmail(email)
	if err != nil {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(credential.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	user := cloneUser(&credential.User)

	s.mu.Lock()
	s.user = user
	s.persistLocked()
	s.mu.Unlock()

	return s.issueToken(user)
}

// SignUp registers a new account, adds it to the credential directory so it
// can sign in again later, and activates it. Fails if the email is taken.
func (s *AuthService) SignUp(name, email, password string) (string, error) {
	if _, err := s.directory.GetByEmail(email); err == nil {
		return "", fmt.Errorf("email '%s' already registered", email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	credential := &models.Credential{
		User: models.User{
			ID:        uuid.New().String(),
			Name:      name,
			Email:     email,
			Avatar:    defaultAvatar,
			Addresses: []models.Address{},
			Orders:    []models.Order{},
			Wishlist:  []string{},
		},
		PasswordHash: string(hash),
	}
	if err := s.directory.Create(credential); err != nil {
		return "", fmt.Errorf("failed to register user: %w", err)
	}

	user := cloneUser(&credential.User)

	s.mu.Lock()
	s.user = user
	s.persistLocked()
	s.mu.Unlock()

	return s.issueToken(user)
}

// SignOut nulls the active user and removes its persisted copy.
func (s *AuthService) SignOut() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	s.persistLocked()
}

// CurrentUser returns a copy of the active user, or nil when signed out.
func (s *AuthService) CurrentUser() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return nil
	}
	return cloneUser(s.user)
}

func (s *AuthService) issueToken(user *models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"exp":     time.Now().Add(s.tokenDurat).Unix(),
		"iat":     time.Now().Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken parses and validates a JWT, returning the claims if valid.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token")
}

// AddToWishlist adds a product id to the wishlist. Adding an id that is
// already present leaves exactly one occurrence.
func (s *AuthService) AddToWishlist(productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return ErrNotSignedIn
	}
	for _, id := range s.user.Wishlist {
		if id == productID {
			return nil
		}
	}
	s.user.Wishlist = append(s.user.Wishlist, productID)
	s.persistLocked()
	return nil
}

// RemoveFromWishlist removes a product id from the wishlist. Removing an
// absent id is not an error.
func (s *AuthService) RemoveFromWishlist(productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return ErrNotSignedIn
	}
	kept := s.user.Wishlist[:0]
	for _, id := range s.user.Wishlist {
		if id != productID {
			kept = append(kept, id)
		}
	}
	s.user.Wishlist = kept
	s.persistLocked()
	return nil
}

// IsInWishlist reports wishlist membership; false when signed out.
func (s *AuthService) IsInWishlist(productID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return false
	}
	for _, id := range s.user.Wishlist {
		if id == productID {
			return true
		}
	}
	return false
}

// Wishlist returns a copy of the wishlist product ids; empty when signed out.
func (s *AuthService) Wishlist() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return nil
	}
	out := make([]string, len(s.user.Wishlist))
	copy(out, s.user.Wishlist)
	return out
}

// OrderRequest carries the checkout snapshot handed to CreateOrder.
type OrderRequest struct {
	Items           []models.OrderItem
	Total           int
	PaymentMethod   string
	ShippingAddress models.Address
}

// CreateOrder synthesizes a new order: a unique id, the creation timestamp,
// initial status pending, a randomized tracking number and a single "Order
// Placed" tracking event located at the shipping city. The order is appended
// to the user's history, persisted, and an order.created event is published.
func (s *AuthService) CreateOrder(request OrderRequest) (*models.Order, error) {
	s.mu.Lock()

	if s.user == nil {
		s.mu.Unlock()
		return nil, ErrNotSignedIn
	}

	now := time.Now()
	location := request.ShippingAddress.City
	if location == "" {
		location = "Unknown"
	}
	paymentMethod := request.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "Credit Card"
	}

	items := make([]models.OrderItem, len(request.Items))
	copy(items, request.Items)

	order := models.Order{
		ID:              uuid.New().String(),
		Date:            now,
		Status:          models.OrderPending,
		Items:           items,
		Total:           request.Total,
		PaymentMethod:   paymentMethod,
		ShippingAddress: request.ShippingAddress,
		TrackingNumber:  newTrackingNumber(),
		TrackingEvents: []models.TrackingEvent{
			{
				Date:        now,
				Status:      "Order Placed",
				Location:    location,
				Description: "Your order has been placed successfully",
			},
		},
	}

	s.user.Orders = append(s.user.Orders, order)
	s.persistLocked()
	userID := s.user.ID
	s.mu.Unlock()

	s.publishOrderEvent("order.created", map[string]interface{}{
		"orderID": order.ID,
		"userID":  userID,
		"status":  string(order.Status),
		"total":   order.Total,
	})

	created := cloneOrder(&order)
	return &created, nil
}

// UpdateOrderStatus moves an order to a new status and appends exactly one
// tracking event labeled with the capitalized status. Transitions not allowed
// by the delivery lifecycle are rejected.
func (s *AuthService) UpdateOrderStatus(orderID string, status models.OrderStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}

	s.mu.Lock()

	if s.user == nil {
		s.mu.Unlock()
		return ErrNotSignedIn
	}

	var order *models.Order
	for i := range s.user.Orders {
		if s.user.Orders[i].ID == orderID {
			order = &s.user.Orders[i]
			break
		}
	}
	if order == nil {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrOrderNotFound, orderID)
	}
	if !order.Status.CanTransition(status) {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s to %s", ErrIllegalTransition, order.Status, status)
	}

	order.Status = status
	order.TrackingEvents = append(order.TrackingEvents, models.TrackingEvent{
		Date:        time.Now(),
		Status:      status.Label(),
		Location:    order.ShippingAddress.City,
		Description: fmt.Sprintf("Your order has been %s", status),
	})
	s.persistLocked()
	userID := s.user.ID
	s.mu.Unlock()

	s.publishOrderEvent("order.status_updated", map[string]interface{}{
		"orderID": orderID,
		"userID":  userID,
		"status":  string(status),
	})
	return nil
}

// GetOrderByID returns a copy of the matching order. An unknown id or a
// signed-out session yields an absent result, never an error.
func (s *AuthService) GetOrderByID(orderID string) (*models.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return nil, false
	}
	for i := range s.user.Orders {
		if s.user.Orders[i].ID == orderID {
			order := cloneOrder(&s.user.Orders[i])
			return &order, true
		}
	}
	return nil, false
}

// Orders returns a copy of the order history, oldest first.
func (s *AuthService) Orders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return nil
	}
	out := make([]models.Order, len(s.user.Orders))
	for i := range s.user.Orders {
		out[i] = cloneOrder(&s.user.Orders[i])
	}
	return out
}

// UpdateProfile overwrites the active user's display name and avatar. Empty
// fields are left unchanged.
func (s *AuthService) UpdateProfile(name, avatar string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return ErrNotSignedIn
	}
	if name != "" {
		s.user.Name = name
	}
	if avatar != "" {
		s.user.Avatar = avatar
	}
	s.persistLocked()
	return nil
}

// AddAddress appends a new address to the book. The first address becomes the
// default; marking a later one default clears the flag on all others.
func (s *AuthService) AddAddress(address models.Address) (*models.Address, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil, ErrNotSignedIn
	}

	address.ID = uuid.New().String()
	if len(s.user.Addresses) == 0 {
		address.IsDefault = true
	}
	if address.IsDefault {
		s.clearDefaultLocked()
	}
	s.user.Addresses = append(s.user.Addresses, address)
	s.persistLocked()
	return &address, nil
}

// UpdateAddress overwrites an existing address in place, keeping the
// one-default invariant.
func (s *AuthService) UpdateAddress(address models.Address) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return ErrNotSignedIn
	}
	for i := range s.user.Addresses {
		if s.user.Addresses[i].ID == address.ID {
			if address.IsDefault {
				s.clearDefaultLocked()
			}
			s.user.Addresses[i] = address
			s.persistLocked()
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrAddressNotFound, address.ID)
}

// SetDefaultAddress marks one address as the default and clears all others.
func (s *AuthService) SetDefaultAddress(addressID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return ErrNotSignedIn
	}
	found := false
	for i := range s.user.Addresses {
		isTarget := s.user.Addresses[i].ID == addressID
		s.user.Addresses[i].IsDefault = isTarget
		found = found || isTarget
	}
	if !found {
		return fmt.Errorf("%w: %s", ErrAddressNotFound, addressID)
	}
	s.persistLocked()
	return nil
}

// DeleteAddress removes an address from the book. Orders keep their embedded
// shipping copies.
func (s *AuthService) DeleteAddress(addressID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return ErrNotSignedIn
	}
	for i := range s.user.Addresses {
		if s.user.Addresses[i].ID == addressID {
			s.user.Addresses = append(s.user.Addresses[:i], s.user.Addresses[i+1:]...)
			s.persistLocked()
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrAddressNotFound, addressID)
}

func (s *AuthService) clearDefaultLocked() {
	for i := range s.user.Addresses {
		s.user.Addresses[i].IsDefault = false
	}
}

func (s *AuthService) publishOrderEvent(event string, payload map[string]interface{}) {
	if s.mqClient == nil {
		return
	}
	if err := s.mqClient.PublishOrderEvent(event, payload); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", event, err)
	}
}

func newTrackingNumber() string {
	return fmt.Sprintf("IND%d", 100000000+rand.Intn(900000000))
}

func cloneUser(user *models.User) *models.User {
	out := *user
	out.Addresses = make([]models.Address, len(user.Addresses))
	copy(out.Addresses, user.Addresses)
	out.Wishlist = make([]string, len(user.Wishlist))
	copy(out.Wishlist, user.Wishlist)
	out.Orders = make([]models.Order, len(user.Orders))
	for i := range user.Orders {
		out.Orders[i] = cloneOrder(&user.Orders[i])
	}
	return &out
}

func cloneOrder(order *models.Order) models.Order {
	out := *order
	out.Items = make([]models.OrderItem, len(order.Items))
	copy(out.Items, order.Items)
	out.TrackingEvents = make([]models.TrackingEvent, len(order.TrackingEvents))
	copy(out.TrackingEvents, order.TrackingEvents)
	return out
}
