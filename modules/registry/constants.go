package registry

const Version = "v0.1.0"
