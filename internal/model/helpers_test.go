package model

import "time"

var testNow = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
