package gateway

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats-server/v2/server"
	natsserver "github.com/nats-io/nats-server/v2/test"
	"github.com/nats-io/nats.go"
	"github.com/piresc/campusride/internal/pkg/constants"
	"github.com/piresc/campusride/internal/pkg/models"
	natspkg "github.com/piresc/campusride/internal/pkg/nats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNatsServer *server.Server

func TestMain(m *testing.M) {
	opts := natsserver.DefaultTestOptions
	opts.Port = -1
	testNatsServer = natsserver.RunServer(&opts)
	code := m.Run()
	testNatsServer.Shutdown()
	os.Exit(code)
}

func TestNATSRideGW_PublishRideEvent(t *testing.T) {
	nc, err := natspkg.NewClient(testNatsServer.ClientURL(), "rides-test")
	require.NoError(t, err)
	defer nc.Close()

	received := make(chan []byte, 1)
	sub, err := nc.GetConn().Subscribe(constants.SubjectRideAccepted, func(msg *nats.Msg) {
		received <- msg.Data
	})
	require.NoError(t, err)
	defer sub.Unsubscribe()

	ride := &models.Ride{ID: uuid.New(), RequestID: uuid.New(), RiderID: uuid.New(), DriverID: uuid.New(), Status: models.RideStatusAccepted}
	event := models.NewRideEvent(ride, time.Now().UTC())

	gw := NewNATSRideGW(nc)
	require.NoError(t, gw.PublishRideEvent(context.Background(), constants.SubjectRideAccepted, event))

	select {
	case data := <-received:
		var got models.RideEvent
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, models.RideStatusAccepted, got.Status)
		require.NotNil(t, got.RideID)
		assert.Equal(t, ride.ID, *got.RideID)
		assert.Equal(t, ride.RiderID, got.RiderID)
	case <-time.After(2 * time.Second):
		t.Fatal("event not received")
	}
	assert.NoError(t, gw.Close())
}

func TestNewRideGW_Drivers(t *testing.T) {
	nc, err := natspkg.NewClient(testNatsServer.ClientURL(), "rides-test")
	require.NoError(t, err)
	defer nc.Close()

	tests := []struct {
		name    string
		driver  string
		nats    *natspkg.Client
		want    interface{}
		wantErr bool
	}{
		{name: "default is nats", driver: "", nats: nc, want: &NATSRideGW{}},
		{name: "nats", driver: DriverNATS, nats: nc, want: &NATSRideGW{}},
		{name: "nats without connection", driver: DriverNATS, wantErr: true},
		{name: "kafka", driver: DriverKafka, want: &KafkaRideGW{}},
		{name: "none", driver: DriverNone, want: NoopRideGW{}},
		{name: "unknown", driver: "carrier-pigeon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &models.Config{}
			cfg.Notifier.Driver = tt.driver
			cfg.Kafka.Brokers = []string{"localhost:9092"}

			gw, err := NewRideGW(cfg, tt.nats)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, gw)
			assert.NoError(t, gw.Close())
		})
	}
}

func TestNoopRideGW(t *testing.T) {
	assert.NoError(t, NoopRideGW{}.PublishRideEvent(context.Background(), "ride.started", models.RideEvent{}))
}

func TestEventKey(t *testing.T) {
	rideID, requestID, riderID := uuid.New(), uuid.New(), uuid.New()

	assert.Equal(t, rideID.String(), eventKey(models.RideEvent{RideID: &rideID, RequestID: &requestID, RiderID: riderID}))
	assert.Equal(t, requestID.String(), eventKey(models.RideEvent{RequestID: &requestID, RiderID: riderID}))
	assert.Equal(t, riderID.String(), eventKey(models.RideEvent{RiderID: riderID}))
}
