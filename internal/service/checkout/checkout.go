package checkout

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dshu-atelier/storefront/internal/gateway"
	"github.com/dshu-atelier/storefront/internal/models"
	"github.com/dshu-atelier/storefront/internal/service/cart"
)

var (
	ErrBusy      = errors.New("checkout already in progress")
	ErrEmptyCart = errors.New("no items in cart")
)

const submitLatency = 2 * time.Second

var (
	emailRe  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe  = regexp.MustCompile(`^(\+7|8)?\s?\(?\d{3}\)?[\s-]?\d{3}[\s-]?\d{2}[\s-]?\d{2}$`)
	cardRe   = regexp.MustCompile(`^(\d{4} ?){3}\d{4}$`)
	expiryRe = regexp.MustCompile(`^(0[1-9]|1[0-2])/?[0-9]{2}$`)
	cvvRe    = regexp.MustCompile(`^\d{3}$`)
)

type Request struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	CardNumber string `json:"card_number"`
	ExpiryDate string `json:"expiry_date"`
	CVV        string `json:"cvv"`
	Notes      string `json:"notes,omitempty"`
}

// ValidationErrors maps field name to a user-facing message.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	return fmt.Sprintf("checkout validation failed for %d field(s)", len(v))
}

// Validate applies the form rules. Returns nil when the request is valid.
func Validate(req Request) ValidationErrors {
	errs := ValidationErrors{}

	switch {
	case req.Name == "":
		errs["name"] = "Имя обязательно"
	case len([]rune(req.Name)) < 2:
		errs["name"] = "Минимум 2 символа"
	case len([]rune(req.Name)) > 50:
		errs["name"] = "Максимум 50 символов"
	}

	switch {
	case req.Email == "":
		errs["email"] = "Email обязателен"
	case !emailRe.MatchString(req.Email):
		errs["email"] = "Введите корректный Email"
	}

	switch {
	case req.Phone == "":
		errs["phone"] = "Телефон обязателен"
	case !phoneRe.MatchString(req.Phone):
		errs["phone"] = "Введите корректный телефон"
	}

	switch {
	case req.Address == "":
		errs["address"] = "Адрес обязателен"
	case len([]rune(req.Address)) < 5:
		errs["address"] = "Адрес слишком короткий"
	case len([]rune(req.Address)) > 200:
		errs["address"] = "Адрес слишком длинный"
	}

	switch {
	case req.CardNumber == "":
		errs["card_number"] = "Номер карты обязателен"
	case !cardRe.MatchString(req.CardNumber):
		errs["card_number"] = "Введите корректный номер карты (16 цифр)"
	}

	switch {
	case req.ExpiryDate == "":
		errs["expiry_date"] = "Срок действия обязателен"
	case !expiryRe.MatchString(req.ExpiryDate):
		errs["expiry_date"] = "Введите корректный срок действия (MM/YY)"
	}

	switch {
	case req.CVV == "":
		errs["cvv"] = "CVV обязателен"
	case !cvvRe.MatchString(req.CVV):
		errs["cvv"] = "Введите корректный CVV (3 цифры)"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Confirmation is the accepted-order summary shown until Reset.
type Confirmation struct {
	OrderID     string            `json:"order_id"`
	Items       []models.CartItem `json:"items"`
	Total       int               `json:"total"`
	Customer    Request           `json:"customer"`
	SubmittedAt time.Time         `json:"submitted_at"`
}

// Service runs the one-shot mock checkout: validate, simulate the remote
// call, accept unconditionally and clear the cart. No payment gateway and no
// server-side order record exist behind it.
type Service struct {
	cart *cart.Service
	gw   gateway.Gateway

	mu      sync.Mutex
	loading bool
	last    *Confirmation
}

func NewService(c *cart.Service, gw gateway.Gateway) *Service {
	return &Service{cart: c, gw: gw}
}

func (s *Service) Submit(ctx context.Context, req Request) (*Confirmation, error) {
	if errs := Validate(req); errs != nil {
		return nil, errs
	}

	s.mu.Lock()
	if s.loading {
		s.mu.Unlock()
		return nil, ErrBusy
	}
	s.loading = true
	s.mu.Unlock()

	// snapshot before the simulated call so the confirmation shows what was
	// actually ordered
	items := s.cart.Items()
	total := s.cart.Total()
	if len(items) == 0 {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
		return nil, ErrEmptyCart
	}

	if err := s.gw.Call(ctx, submitLatency); err != nil {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
		return nil, err
	}

	conf := &Confirmation{
		OrderID:     uuid.NewString(),
		Items:       items,
		Total:       total,
		Customer:    req,
		SubmittedAt: time.Now(),
	}

	if err := s.cart.Clear(ctx); err != nil {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
		return nil, err
	}

	s.mu.Lock()
	s.loading = false
	s.last = conf
	s.mu.Unlock()
	return conf, nil
}

// Submitted reports the confirmation of the last accepted order, if any.
func (s *Service) Submitted() (*Confirmation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.last == nil {
		return nil, false
	}
	conf := *s.last
	return &conf, true
}

// Reset returns the flow to the form state after the confirmation screen.
func (s *Service) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last = nil
}

func (s *Service) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}
