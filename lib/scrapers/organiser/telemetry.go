package organiser

import "sessionwatch/lib/telemetry"

var tracer = telemetry.Tracer("sessionwatch.lib.scrapers.organiser")
