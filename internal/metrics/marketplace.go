package metrics

import (
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Marketplace agrupa las métricas de la API: tráfico HTTP y ciclo de vida de productos y órdenes.
type Marketplace struct {
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	productEvents *prometheus.CounterVec
	ordersCreated prometheus.Counter
	// El estado de una orden es texto libre; no se usa como label.
	statusChanges prometheus.Counter
	unauthorized  *prometheus.CounterVec
}

// New registra las métricas en el registerer por defecto.
func New() *Marketplace {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer registra las métricas en registerer (nil = registerer por defecto).
// Registrar dos veces devuelve los collectors ya existentes.
func NewWithRegisterer(registerer prometheus.Registerer) *Marketplace {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	return &Marketplace{
		httpRequests: register(registerer, prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "marketplace_http_requests_total",
			Help: "Total de peticiones HTTP por método, ruta y código",
		}, []string{"method", "route", "status"})),
		httpDuration: register(registerer, prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "marketplace_http_request_duration_seconds",
			Help:    "Duración de las peticiones HTTP en segundos",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"})),
		productEvents: register(registerer, prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "marketplace_product_events_total",
			Help: "Productos creados, actualizados y eliminados",
		}, []string{"event"})),
		ordersCreated: register(registerer, prometheus.NewCounter(prometheus.CounterOpts{
			Name: "marketplace_orders_created_total",
			Help: "Órdenes creadas",
		})),
		statusChanges: register(registerer, prometheus.NewCounter(prometheus.CounterOpts{
			Name: "marketplace_order_status_changes_total",
			Help: "Cambios de estado de órdenes aplicados por el vendedor",
		})),
		unauthorized: register(registerer, prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "marketplace_unauthorized_mutations_total",
			Help: "Mutaciones rechazadas por no ser el dueño del recurso",
		}, []string{"resource"})),
	}
}

func register[T prometheus.Collector](registerer prometheus.Registerer, collector T) T {
	if err := registerer.Register(collector); err != nil {
		if already, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := already.ExistingCollector.(T)
			if !ok {
				panic(fmt.Sprintf("collector ya registrado con otro tipo: %v", err))
			}
			return existing
		}
		panic(fmt.Sprintf("registrar collector: %v", err))
	}
	return collector
}

// ObserveRequest registra una petición HTTP terminada.
func (m *Marketplace) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *Marketplace) ProductCreated() { m.productEvents.WithLabelValues("created").Inc() }
func (m *Marketplace) ProductUpdated() { m.productEvents.WithLabelValues("updated").Inc() }
func (m *Marketplace) ProductDeleted() { m.productEvents.WithLabelValues("deleted").Inc() }
func (m *Marketplace) OrderCreated()   { m.ordersCreated.Inc() }

// OrderStatusChanged cuenta un cambio de estado.
func (m *Marketplace) OrderStatusChanged(string) { m.statusChanges.Inc() }

// Unauthorized cuenta una mutación rechazada por el guard de propiedad.
func (m *Marketplace) Unauthorized(resource string) {
	m.unauthorized.WithLabelValues(resource).Inc()
}
