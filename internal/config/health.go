package config

import (
	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Health struct {
	// HealthchecksioUUID is the healthchecks.io check UUID to
	// ping with the run state. Leave empty to disable pinging.
	HealthchecksioUUID    *string
	HealthchecksioBaseURL string
}

func (h *Health) setDefaults() {
	h.HealthchecksioUUID = gosettings.DefaultPointer(h.HealthchecksioUUID, "")
	h.HealthchecksioBaseURL = gosettings.DefaultComparable(
		h.HealthchecksioBaseURL, "https://hc-ping.com")
}

func (h Health) Validate() (err error) {
	return nil
}

func (h Health) String() string {
	return h.toLinesNode().String()
}

func (h Health) toLinesNode() *gotree.Node {
	if *h.HealthchecksioUUID == "" {
		return nil // pinging disabled
	}
	node := gotree.New("Healthchecks.io")
	node.Appendf("Base URL: %s", h.HealthchecksioBaseURL)
	node.Appendf("UUID: %s", obfuscated(*h.HealthchecksioUUID))
	return node
}

func (h *Health) read(r *reader.Reader) {
	h.HealthchecksioUUID = r.Get("HEALTHCHECKSIO_UUID", reader.ForceLowercase(false))
	h.HealthchecksioBaseURL = r.String("HEALTHCHECKSIO_BASE_URL", reader.ForceLowercase(false))
}
