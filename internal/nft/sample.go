package nft

// SampleTokens returns the bundled placeholder collection served when the
// provider is unreachable or empty.
func SampleTokens() []Token {
	return []Token{
		sampleToken("1", "Cosmic Nebula #1", "photo-1444080748397-f442aa95c3e5"),
		sampleToken("2", "Stellar Horizon #2", "photo-1419242902214-272b3f66ee7a"),
		sampleToken("3", "Deep Space Void #3", "photo-1462332420958-a05d1e7413e3"),
		sampleToken("4", "Aurora Drift #4", "photo-1444080748397-f442aa95c3e5"),
		sampleToken("5", "Orbital Dreams #5", "photo-1419242902214-272b3f66ee7a"),
		sampleToken("6", "Nebula Winds #6", "photo-1462332420958-a05d1e7413e3"),
		sampleToken("7", "Stellar Lights #7", "photo-1462332420958-a05d1e7413e3"),
		sampleToken("8", "Galaxy Genesis #8", "photo-1444080748397-f442aa95c3e5"),
	}
}

func sampleToken(id, name, photo string) Token {
	base := "https://images.unsplash.com/" + photo

	return Token{
		ID:           "cosmic-" + id,
		TokenID:      id,
		Name:         name,
		ImageURL:     base + "?w=1200&h=1200&fit=crop",
		ThumbnailURL: base + "?w=100&h=100&fit=crop",
	}
}
