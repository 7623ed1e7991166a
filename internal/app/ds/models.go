package ds

// All lists every model in migration order (parents before children).
func All() []interface{} {
	return []interface{}{
		&Level{},
		&User{},
		&Client{},
		&Platform{},
		&Game{},
		&DigitalAccount{},
		&License{},
		&Order{},
		&OrderLine{},
	}
}
