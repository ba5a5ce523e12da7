// Command devtoken mints HS256 bearer tokens for local development against
// the plan archive endpoints. It signs with JWT_SECRET from the same
// environment the server reads.
//
//	go run ./cmd/devtoken -email alice@example.com
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"TRAVELDIARY_BACK-END/internal/config"
	"TRAVELDIARY_BACK-END/internal/middleware"
)

func main() {
	var (
		userID = flag.String("user", "", "user ID (UUID); a random one is generated when empty")
		email  = flag.String("email", "dev@example.com", "email claim")
		ttl    = flag.Duration("ttl", 0, "token lifetime; defaults to JWT_ACCESS_TTL")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	id := uuid.New()
	if *userID != "" {
		if id, err = uuid.Parse(*userID); err != nil {
			log.Fatalf("invalid -user: %v", err)
		}
	}

	jwtCfg := cfg.JWT
	if *ttl > 0 {
		jwtCfg.AccessTokenTTL = *ttl
	}

	token, err := middleware.GenerateToken(id, *email, &jwtCfg)
	if err != nil {
		log.Fatalf("sign token: %v", err)
	}

	fmt.Fprintf(os.Stderr, "user=%s email=%s expires=%s\n", id, *email, time.Now().Add(jwtCfg.AccessTokenTTL).UTC().Format(time.RFC3339))
	fmt.Println(token)
}
