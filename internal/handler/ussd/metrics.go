package ussd

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var framesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "ussd_frames_total",
	Help: "USSD frames served, labelled by frame type (con/end).",
}, []string{"frame"})
