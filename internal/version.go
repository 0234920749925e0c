package internal

// Version is the gallifreyan release version
const Version = "0.3.0"
