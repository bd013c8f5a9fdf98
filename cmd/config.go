package cmd

import "time"

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	AmqpURL    string

	DistributionInterval time.Duration
	SweepInterval        time.Duration
	OfferTTL             time.Duration
}
