package config

import "os"

// existingFiles filters paths down to regular files that exist, so godotenv.Load
// does not stop at the first missing one.
func existingFiles(paths ...string) []string {
	out := make([]string, 0, len(paths))
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		out = append(out, path)
	}
	return out
}
