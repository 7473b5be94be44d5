package database

import (
	"log"

	"github.com/hibiken/asynq"
)

// AsynqClient enqueues the form auto-close jobs. Nil when Redis is absent;
// schedulers must treat that as "scheduling disabled", not an error state.
var AsynqClient *asynq.Client

// InitAsynq wires the job client onto the already-connected Redis instance.
func InitAsynq() {
	if RedisClient == nil || RedisURI == "" {
		log.Println("⚠️ Redis not available. Form auto-close scheduling disabled.")
		return
	}

	AsynqClient = asynq.NewClient(asynq.RedisClientOpt{Addr: RedisURI})
	log.Println("✅ Asynq client initialized")
}
