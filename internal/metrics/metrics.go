package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Métricas del MID: llamadas salientes al core y estado del sondeo de
// notificaciones. Se exponen en /metrics.

var (
	outboundTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "estudios_mid",
			Name:      "outbound_requests_total",
			Help:      "Llamadas salientes por servicio, operación y resultado.",
		},
		[]string{"servicio", "operacion", "resultado"},
	)

	outboundDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "estudios_mid",
			Name:      "outbound_request_duration_seconds",
			Help:      "Latencia de llamadas salientes.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"servicio", "operacion"},
	)

	pollerSesiones = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "estudios_mid",
			Name:      "notificaciones_sesiones_activas",
			Help:      "Sesiones con sondeo de notificaciones activo.",
		},
	)

	pollerCiclos = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "estudios_mid",
			Name:      "notificaciones_ciclos_total",
			Help:      "Ciclos de sondeo de notificaciones ejecutados.",
		},
	)
)

// ObserveOutbound registra una llamada saliente terminada.
func ObserveOutbound(servicio, operacion string, start time.Time, err error) {
	resultado := "ok"
	if err != nil {
		resultado = "error"
	}
	outboundTotal.WithLabelValues(servicio, operacion, resultado).Inc()
	outboundDuration.WithLabelValues(servicio, operacion).Observe(time.Since(start).Seconds())
}

// PollerSesionInicia incrementa las sesiones de sondeo activas.
func PollerSesionInicia() {
	pollerSesiones.Inc()
}

// PollerSesionTermina decrementa las sesiones de sondeo activas.
func PollerSesionTermina() {
	pollerSesiones.Dec()
}

// PollerCiclo cuenta un ciclo de sondeo.
func PollerCiclo() {
	pollerCiclos.Inc()
}

// Handler expone el endpoint de métricas en formato Prometheus.
func Handler() http.Handler {
	return promhttp.Handler()
}
