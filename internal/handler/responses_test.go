package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/GardenPlanner_Go/internal/domain"
)

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"nil", nil, http.StatusInternalServerError, ErrMsgUnknownError},
		{"corrupt state", fmt.Errorf("crafter 3: %w", domain.ErrCorruptState), http.StatusInternalServerError, ErrMsgCorruptStateError},
		{"divergence", domain.ErrSimulationDivergence, http.StatusUnprocessableEntity, ErrMsgDivergedError},
		{"save format keeps detail", fmt.Errorf("%w: bad tile", domain.ErrInvalidSaveFormat), http.StatusBadRequest, "invalid save format: bad tile"},
		{"placement", domain.ErrInvalidPlacement, http.StatusBadRequest, domain.ErrMsgInvalidPlacement},
		{"unknown crop", domain.ErrUnknownCrop, http.StatusBadRequest, domain.ErrMsgUnknownCrop},
		{"unknown fertiliser", domain.ErrUnknownFertiliser, http.StatusBadRequest, domain.ErrMsgUnknownFertiliser},
		{"crafter cap", domain.ErrCrafterCapReached, http.StatusBadRequest, domain.ErrMsgCrafterCapReached},
		{"invalid input", domain.ErrInvalidInput, http.StatusBadRequest, domain.ErrMsgInvalidInput},
		{"cancelled", context.Canceled, http.StatusServiceUnavailable, ErrMsgCancelledError},
		{"deadline", context.DeadlineExceeded, http.StatusServiceUnavailable, ErrMsgCancelledError},
		{"unknown error is hidden", errors.New("pool exploded at 0xdeadbeef"), http.StatusInternalServerError, ErrMsgGenericServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := mapServiceErrorToUserMessage(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestBufferPool(t *testing.T) {
	buf := getBuffer()
	buf.WriteString("report")
	putBuffer(buf)

	again := getBuffer()
	assert.Equal(t, 0, again.Len())
	putBuffer(again)

	big := getBuffer()
	big.Grow(maxPooledBufferSize + 1)
	putBuffer(big)
}
