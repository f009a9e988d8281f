package inventory

import (
	"sync"
	"time"
)

// maxCooldownEntries límite a partir del cual se barren las entradas vencidas.
const maxCooldownEntries = 4096

// CooldownMap registra la última alerta enviada por SKU para suprimir
// repeticiones dentro de la ventana configurada. Es estado efímero del
// proceso, propiedad exclusiva del notificador; no se persiste.
type CooldownMap struct {
	mu   sync.Mutex
	ttl  time.Duration
	last map[string]time.Time
	now  func() time.Time // inyectable en tests
}

// NewCooldownMap construye el mapa con la ventana dada.
func NewCooldownMap(ttl time.Duration) *CooldownMap {
	return &CooldownMap{
		ttl:  ttl,
		last: make(map[string]time.Time),
		now:  time.Now,
	}
}

// Active indica si el SKU sigue dentro de la ventana de supresión.
func (c *CooldownMap) Active(sku string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	sent, ok := c.last[sku]
	if !ok {
		return false
	}
	return c.now().Sub(sent) < c.ttl
}

// Mark registra el instante de la alerta recién enviada para el SKU.
// Si el mapa creció demasiado, barre las entradas ya vencidas.
func (c *CooldownMap) Mark(sku string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	c.last[sku] = now
	if len(c.last) > maxCooldownEntries {
		for k, sent := range c.last {
			if now.Sub(sent) >= c.ttl {
				delete(c.last, k)
			}
		}
	}
}
