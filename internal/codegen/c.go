package codegen

const cHeaderTemplate = `{{.Header}}
#pragma once

// padlink "{{.Profile}}" control packet: {{.Size}} bytes, one UDP datagram
// every {{.TickMS}} ms. No header, no checksum.

#include <stddef.h>
#include <stdint.h>

#define {{.Prefix}}_PACKET_SIZE {{.Size}}
#define {{.Prefix}}_TICK_MS {{.TickMS}}

#define {{.Prefix}}_AXIS_MIN {{.AxisMin}}
#define {{.Prefix}}_AXIS_NEUTRAL {{.AxisNeutral}}
#define {{.Prefix}}_AXIS_MAX {{.AxisMax}}

// Axis byte offsets: MIN while the first action is held, MAX for the second.
{{- range .Axes}}
#define {{$.Prefix}}_AXIS_{{.Const}} {{.Offset}} // {{.Neg}} / {{.Pos}}
{{- end}}

// Buttons: byte offset and bit mask.
{{- range .Buttons}}
#define {{$.Prefix}}_BTN_{{.Const}}_BYTE {{.Offset}} // {{.Action}}
#define {{$.Prefix}}_BTN_{{.Const}}_MASK {{.Mask}}
{{- end}}

typedef struct {
{{- range .Axes}}
    uint8_t {{.Name}};
{{- end}}
    uint8_t buttons[{{.ButtonBytes}}];
} padlink_{{.Profile}}_packet_t;

// Returns 0 and fills out when len matches the packet size, -1 otherwise.
static inline int padlink_{{.Profile}}_parse(const uint8_t *buf, size_t len, padlink_{{.Profile}}_packet_t *out) {
    if (buf == NULL || out == NULL || len != {{.Prefix}}_PACKET_SIZE) {
        return -1;
    }
{{- range .Axes}}
    out->{{.Name}} = buf[{{.Offset}}];
{{- end}}
    for (size_t i = 0; i < {{.ButtonBytes}}; i++) {
        out->buttons[i] = buf[{{.ButtonBase}} + i];
    }
    return 0;
}

#define {{.Prefix}}_PRESSED(pkt, btn) \
    (((pkt)->buttons[btn##_BYTE - {{.ButtonBase}}] & btn##_MASK) != 0)
`
