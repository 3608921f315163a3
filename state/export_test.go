package state

var Release = release
