package monitor

import "sessionwatch/lib/telemetry"

var tracer = telemetry.Tracer("sessionwatch.services.monitor")
