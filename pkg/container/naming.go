package container

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// suffixLen is the number of hash characters appended to a generated name.
const suffixLen = 6

// GenerateName derives a fresh container name from a base image: a trailing
// "base" in the image name becomes "app", and a short hash of the current
// instant is appended. Non-deterministic by construction (the clock is the
// uniqueness token); collisions are treated as negligible, not impossible.
func GenerateName(baseImage string) (string, error) {
	if baseImage == "" {
		return "", errors.New("base image name is empty")
	}
	return nameAt(baseImage, time.Now()), nil
}

func nameAt(baseImage string, t time.Time) string {
	stem := Sanitize(baseImage)
	if strings.HasSuffix(stem, "base") {
		stem = strings.TrimSuffix(stem, "base") + "app"
	}
	return fmt.Sprintf("%s-%s", stem, hashSuffix(t))
}

func hashSuffix(t time.Time) string {
	sum := sha256.Sum256([]byte(strconv.FormatInt(t.UnixNano(), 10)))
	return hex.EncodeToString(sum[:])[:suffixLen]
}

// Sanitize converts a name to docker-compatible format.
func Sanitize(name string) string {
	// Docker container names: [a-zA-Z0-9][a-zA-Z0-9_.-]*
	name = strings.ReplaceAll(name, "/", "-")
	name = strings.ReplaceAll(name, " ", "-")
	name = strings.ReplaceAll(name, ":", "-")
	return name
}
