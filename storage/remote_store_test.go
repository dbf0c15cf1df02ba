package storage

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/blogem/tracker/logging"
	"github.com/blogem/tracker/models"
	"github.com/blogem/tracker/storage/mocks"
)

// RemoteStoreTestSuite runs the remote store against an in-process Redis
type RemoteStoreTestSuite struct {
	suite.Suite
	mr    *miniredis.Miniredis
	store *RemoteStore
	ctx   context.Context
}

func (suite *RemoteStoreTestSuite) SetupTest() {
	suite.mr = miniredis.RunT(suite.T())
	client, err := NewRedisClient("redis://"+suite.mr.Addr(), time.Second)
	require.NoError(suite.T(), err)

	suite.store = NewRemoteStore(client, RemoteOptions{
		Backend:      models.StorageTypeRedis,
		RetentionCap: 10,
		Timeout:      time.Second,
	}, logging.Nop())
	suite.store.now = tickingClock()
	suite.ctx = context.Background()
}

func (suite *RemoteStoreTestSuite) TearDownTest() {
	_ = suite.store.Close()
}

func (suite *RemoteStoreTestSuite) ips(records []models.RequestRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.IPAddress
	}
	return out
}

func (suite *RemoteStoreTestSuite) TestSaveRecord_WritesJSONUnderPrefixedKey() {
	require.NoError(suite.T(), suite.store.SaveRecord(suite.ctx, record(1)))

	keys := suite.mr.Keys()
	require.Len(suite.T(), keys, 1)
	assert.True(suite.T(), strings.HasPrefix(keys[0], "requests_:2025-07-14T07:30:00.001000000Z:"))

	raw, err := suite.mr.Get(keys[0])
	require.NoError(suite.T(), err)
	var stored models.RequestRecord
	require.NoError(suite.T(), json.Unmarshal([]byte(raw), &stored))
	assert.Equal(suite.T(), record(1), stored)
}

func (suite *RemoteStoreTestSuite) TestRecords_NewestFirstWithLimit() {
	for i := 1; i <= 4; i++ {
		require.NoError(suite.T(), suite.store.SaveRecord(suite.ctx, record(i)))
	}

	all, err := suite.store.Records(suite.ctx, 0)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), []string{"10.0.0.4", "10.0.0.3", "10.0.0.2", "10.0.0.1"}, suite.ips(all))

	two, err := suite.store.Records(suite.ctx, 2)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), []string{"10.0.0.4", "10.0.0.3"}, suite.ips(two))
}

func (suite *RemoteStoreTestSuite) TestRecords_Empty() {
	records, err := suite.store.Records(suite.ctx, 50)
	require.NoError(suite.T(), err)
	assert.Empty(suite.T(), records)
}

func (suite *RemoteStoreTestSuite) TestRetention_KeepsNewestHalf() {
	for i := 1; i <= 10; i++ {
		require.NoError(suite.T(), suite.store.SaveRecord(suite.ctx, record(i)))
	}
	assert.Len(suite.T(), suite.mr.Keys(), 10)

	require.NoError(suite.T(), suite.store.SaveRecord(suite.ctx, record(11)))
	assert.Len(suite.T(), suite.mr.Keys(), 5)

	records, err := suite.store.Records(suite.ctx, 0)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), []string{"10.0.0.11", "10.0.0.10", "10.0.0.9", "10.0.0.8", "10.0.0.7"}, suite.ips(records))
}

func (suite *RemoteStoreTestSuite) TestRetention_IgnoresUserKeys() {
	require.NoError(suite.T(), suite.store.AddUser(suite.ctx, "alice", "secret"))
	for i := 1; i <= 11; i++ {
		require.NoError(suite.T(), suite.store.SaveRecord(suite.ctx, record(i)))
	}

	assert.True(suite.T(), suite.mr.Exists("users_alice"))
	password, err := suite.store.GetUser(suite.ctx, "alice")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "secret", password)
}

func (suite *RemoteStoreTestSuite) TestSaveRecord_FallsBackWhenRemoteFails() {
	suite.mr.SetError("ERR simulated outage")

	require.NoError(suite.T(), suite.store.SaveRecord(suite.ctx, record(1)))
	assert.Equal(suite.T(), 1, suite.store.fallback.Len())

	records, err := suite.store.Records(suite.ctx, 10)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), []string{"10.0.0.1"}, suite.ips(records))
}

func (suite *RemoteStoreTestSuite) TestRecords_MergesFallbackAfterRecovery() {
	require.NoError(suite.T(), suite.store.SaveRecord(suite.ctx, record(1)))

	suite.mr.SetError("ERR simulated outage")
	require.NoError(suite.T(), suite.store.SaveRecord(suite.ctx, record(2)))
	suite.mr.SetError("")

	require.NoError(suite.T(), suite.store.SaveRecord(suite.ctx, record(3)))

	records, err := suite.store.Records(suite.ctx, 0)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), []string{"10.0.0.3", "10.0.0.2", "10.0.0.1"}, suite.ips(records))
}

func (suite *RemoteStoreTestSuite) TestUsers_RoundTrip() {
	require.NoError(suite.T(), suite.store.AddUser(suite.ctx, "alice", "secret"))

	raw, err := suite.mr.Get("users_alice")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "secret", raw)

	password, err := suite.store.GetUser(suite.ctx, "alice")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "secret", password)
}

func (suite *RemoteStoreTestSuite) TestGetUser_Missing() {
	_, err := suite.store.GetUser(suite.ctx, "nobody")
	assert.ErrorIs(suite.T(), err, ErrUserNotFound)
}

func (suite *RemoteStoreTestSuite) TestUsers_FallbackDuringOutage() {
	suite.mr.SetError("ERR simulated outage")
	require.NoError(suite.T(), suite.store.AddUser(suite.ctx, "bob", "hunter2"))

	password, err := suite.store.GetUser(suite.ctx, "bob")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "hunter2", password)

	// still found once the remote store recovers
	suite.mr.SetError("")
	password, err = suite.store.GetUser(suite.ctx, "bob")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "hunter2", password)
}

func (suite *RemoteStoreTestSuite) TestStatus() {
	status, err := suite.store.Status(suite.ctx)
	require.NoError(suite.T(), err)
	assert.True(suite.T(), status.RemoteConnected)
	assert.Equal(suite.T(), models.StorageTypeRedis, status.StorageType)
	assert.Equal(suite.T(), "ok", status.Status)

	suite.mr.SetError("ERR simulated outage")
	status, err = suite.store.Status(suite.ctx)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "degraded", status.Status)
	assert.NotEmpty(suite.T(), status.Message)
}

func TestRemoteStoreTestSuite(t *testing.T) {
	suite.Run(t, new(RemoteStoreTestSuite))
}

func TestRemoteStore_SkipsUndecodableRecords(t *testing.T) {
	kv := mocks.NewMockKVClient(t)
	store := NewRemoteStore(kv, RemoteOptions{RetentionCap: 10}, logging.Nop())

	good, err := json.Marshal(record(1))
	require.NoError(t, err)

	kv.EXPECT().Keys(mock.Anything, "requests_:*").Return([]string{"requests_:a", "requests_:b", "requests_:c"}, nil)
	kv.EXPECT().MGet(mock.Anything, "requests_:c", "requests_:b", "requests_:a").
		Return([]string{"{not json", "", string(good)}, nil)

	records, err := store.Records(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "10.0.0.1", records[0].IPAddress)
}

func TestRemoteStore_CleanupFailureDoesNotFailSave(t *testing.T) {
	kv := mocks.NewMockKVClient(t)
	store := NewRemoteStore(kv, RemoteOptions{RetentionCap: 2}, logging.Nop())

	kv.EXPECT().Set(mock.Anything, mock.Anything, mock.Anything).Return(nil)
	kv.EXPECT().Keys(mock.Anything, "requests_:*").Return([]string{"requests_:1", "requests_:2", "requests_:3"}, nil)
	kv.EXPECT().Del(mock.Anything, "requests_:1", "requests_:2").Return(int64(0), errors.New("connection reset"))

	assert.NoError(t, store.SaveRecord(context.Background(), record(1)))
	assert.Equal(t, 0, store.fallback.Len())
}

func TestRemoteStore_MGetLengthMismatchUsesFallback(t *testing.T) {
	kv := mocks.NewMockKVClient(t)
	store := NewRemoteStore(kv, RemoteOptions{RetentionCap: 10}, logging.Nop())
	store.fallback.append("requests_:z", record(9))

	kv.EXPECT().Keys(mock.Anything, "requests_:*").Return([]string{"requests_:a"}, nil)
	kv.EXPECT().MGet(mock.Anything, "requests_:a").Return([]string{}, nil)

	records, err := store.Records(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "10.0.0.9", records[0].IPAddress)
}
