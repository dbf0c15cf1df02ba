package storage

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUpstash answers Upstash REST commands from an in-memory map
func fakeUpstash(t *testing.T, token string) (*httptest.Server, map[string]string) {
	t.Helper()
	data := map[string]string{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+token {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
			return
		}

		var args []string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&args))

		var result any
		switch args[0] {
		case "PING":
			result = "PONG"
		case "SET":
			data[args[1]] = args[2]
			result = "OK"
		case "GET":
			if v, ok := data[args[1]]; ok {
				result = v
			}
		case "MGET":
			values := make([]any, 0, len(args)-1)
			for _, k := range args[1:] {
				if v, ok := data[k]; ok {
					values = append(values, v)
				} else {
					values = append(values, nil)
				}
			}
			result = values
		case "KEYS":
			keys := []string{}
			for k := range data {
				if len(k) >= len(RequestPrefix) && k[:len(RequestPrefix)] == RequestPrefix {
					keys = append(keys, k)
				}
			}
			result = keys
		case "DEL":
			n := 0
			for _, k := range args[1:] {
				if _, ok := data[k]; ok {
					delete(data, k)
					n++
				}
			}
			result = n
		default:
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "ERR unknown command"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"result": result})
	}))
	t.Cleanup(server.Close)
	return server, data
}

func TestUpstashClient_Commands(t *testing.T) {
	server, data := fakeUpstash(t, "token")
	client := NewUpstashClient(server.URL+"/", "token", time.Second)
	ctx := context.Background()

	require.NoError(t, client.Ping(ctx))

	require.NoError(t, client.Set(ctx, "requests_:a", "1"))
	require.NoError(t, client.Set(ctx, "requests_:b", "2"))
	require.NoError(t, client.Set(ctx, "users_alice", "secret"))
	assert.Len(t, data, 3)

	value, found, err := client.Get(ctx, "users_alice")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "secret", value)

	_, found, err = client.Get(ctx, "users_nobody")
	require.NoError(t, err)
	assert.False(t, found)

	keys, err := client.Keys(ctx, "requests_:*")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"requests_:a", "requests_:b"}, keys)

	values, err := client.MGet(ctx, "requests_:a", "requests_:missing", "requests_:b")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "", "2"}, values)

	removed, err := client.Del(ctx, "requests_:a", "requests_:missing")
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	assert.NoError(t, client.Close())
}

func TestUpstashClient_Errors(t *testing.T) {
	server, _ := fakeUpstash(t, "token")
	ctx := context.Background()

	err := NewUpstashClient(server.URL, "wrong", time.Second).Ping(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unauthorized")

	err = NewUpstashClient(server.URL, "token", time.Second).do(ctx, nil, "FLUSHALL")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}

func TestUpstashClient_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	t.Cleanup(server.Close)

	err := NewUpstashClient(server.URL, "token", 20*time.Millisecond).Ping(context.Background())
	assert.Error(t, err)
}
