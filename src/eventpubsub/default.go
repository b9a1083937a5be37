package eventpubsub

import (
	"github.com/asaskevich/EventBus"
	log "github.com/sirupsen/logrus"
)

var bus EventBus.Bus

func Init() {
	bus = EventBus.New()
}

func Publish(publisherName string, topic string, event interface{}) {
	log.Debugf("%s -> %s", publisherName, topic)
	bus.Publish(topic, event)
}

func PublishEventError(publisherName string, err error) {
	log.Errorf("%s: %v", publisherName, err)
	bus.Publish(Error, err)
}

func Subscribe(topic string, callbackFn interface{}) error {
	if err := bus.SubscribeAsync(topic, callbackFn, false); err != nil {
		return err
	}

	log.Infof("Subscribed to topic %s", topic)
	return nil
}

// WaitAsync blocks until all published events have been delivered. Callers
// that need delivery ordering (tests, shutdown paths) flush through here.
func WaitAsync() {
	bus.WaitAsync()
}
