package info

import (
	"bufio"
	"strconv"
	"strings"
)

// expositionValue finds a metric sample by name in Prometheus text
// exposition output. Returns zero when the metric has not been exposed.
func expositionValue(body, metric string) (float64, error) {
	scanner := bufio.NewScanner(strings.NewReader(body))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 || fields[0] != metric {
			continue
		}
		return strconv.ParseFloat(fields[len(fields)-1], 64)
	}
	return 0, scanner.Err()
}
