package userctx

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUsername(t *testing.T) {
	assert.Equal(t, "anonymous", GetUsername(context.Background()))
	assert.Equal(t, "anonymous", GetUsername(SetUsername(context.Background(), "")))
	assert.Equal(t, "alice", GetUsername(SetUsername(context.Background(), "alice")))
}
