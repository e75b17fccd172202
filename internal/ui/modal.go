package ui

import "sync"

type Overlay string

const (
	OverlayNone     Overlay = ""
	OverlayAuth     Overlay = "auth"
	OverlayCheckout Overlay = "checkout"
	OverlayProduct  Overlay = "product"
)

// ModalState tracks which overlay is visible. At most one overlay is open at
// a time; the cart sidebar is owned by the cart service instead. Nothing here
// is persisted.
type ModalState struct {
	mu        sync.Mutex
	overlay   Overlay
	productID string
}

func NewModalState() *ModalState {
	return &ModalState{}
}

func (m *ModalState) OpenAuth() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.overlay = OverlayAuth
	m.productID = ""
}

func (m *ModalState) OpenCheckout() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.overlay = OverlayCheckout
	m.productID = ""
}

func (m *ModalState) OpenProduct(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.overlay = OverlayProduct
	m.productID = id
}

func (m *ModalState) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.overlay = OverlayNone
	m.productID = ""
}

// Active returns the open overlay and, for the product overlay, the selected
// product id.
func (m *ModalState) Active() (Overlay, string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.overlay, m.productID
}
