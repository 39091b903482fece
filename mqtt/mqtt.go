// mqtt.go - MQTT client used to announce course changes
// The client is optional: with no broker configured every publish is a no-op.

package mqtt // Declares the package name

import ( // Import required packages
	"errors" // For the publish timeout error
	"fmt"    // For wrapping errors
	"sync"   // For guarding the shared client
	"time"   // For connect and publish deadlines

	paho "github.com/eclipse/paho.mqtt.golang" // MQTT client library
	"github.com/goccy/go-json"                  // JSON encoding for payloads
)

const (
	connectTimeout = 5 * time.Second // How long to wait for the broker handshake
	publishTimeout = 2 * time.Second // How long to wait for a publish acknowledgement
	qos            = 1               // At least once
)

var ErrPublishTimeout = errors.New("mqtt: publish timed out") // Broker did not acknowledge in time

var ( // Process wide client, set once at startup
	mu     sync.RWMutex // Guards client
	client paho.Client  // Nil when no broker is configured
)

// Connect dials broker and keeps the connection for the life of the process.
// An empty broker leaves publishing disabled.
func Connect(broker, clientID string) error {
	if broker == "" { // Events disabled
		return nil
	}
	opts := paho.NewClientOptions(). // Build client options
		AddBroker(broker).                // e.g. tcp://localhost:1883
		SetClientID(clientID).            // Identify this server to the broker
		SetAutoReconnect(true).           // Survive broker restarts
		SetConnectTimeout(connectTimeout) // Fail fast on an unreachable broker

	c := paho.NewClient(opts) // Create the client
	token := c.Connect()      // Start connecting
	if !token.WaitTimeout(connectTimeout) {
		return fmt.Errorf("mqtt: connecting to %s timed out", broker)
	}
	if err := token.Error(); err != nil { // Refused, bad address, auth failure
		return fmt.Errorf("mqtt: connecting to %s: %w", broker, err)
	}

	mu.Lock() // Publish the client to other goroutines
	client = c
	mu.Unlock()
	return nil
}

// Enabled reports whether a broker connection was established.
func Enabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return client != nil // Connected at least once
}

// Publish sends payload to topic. It returns nil without doing anything when
// no broker is configured.
func Publish(topic string, payload interface{}) error {
	mu.RLock() // Snapshot the client
	c := client
	mu.RUnlock()
	if c == nil { // Events disabled
		return nil
	}

	token := c.Publish(topic, qos, false, payload) // Not retained
	if !token.WaitTimeout(publishTimeout) {
		return ErrPublishTimeout
	}
	return token.Error() // Broker side failure, if any
}

// PublishJSON encodes v as JSON and publishes it to topic.
func PublishJSON(topic string, v interface{}) error {
	payload, err := json.Marshal(v) // Encode even when disabled
	if err != nil {
		return fmt.Errorf("mqtt: encoding payload for %s: %w", topic, err)
	}
	return Publish(topic, payload)
}

// Disconnect closes the broker connection, waiting briefly for in-flight messages.
func Disconnect() {
	mu.Lock()
	defer mu.Unlock()
	if client != nil {
		client.Disconnect(250) // Milliseconds to wait for in-flight work
		client = nil           // Later publishes become no-ops
	}
}
