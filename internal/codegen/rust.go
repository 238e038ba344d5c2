package codegen

const rustModuleTemplate = `{{.Header}}
//! padlink "{{.Profile}}" control packet: {{.Size}} bytes, one UDP datagram
//! every {{.TickMS}} ms. No header, no checksum.

pub const PACKET_SIZE: usize = {{.Size}};
pub const TICK_MS: u64 = {{.TickMS}};

pub const AXIS_MIN: u8 = {{.AxisMin}};
pub const AXIS_NEUTRAL: u8 = {{.AxisNeutral}};
pub const AXIS_MAX: u8 = {{.AxisMax}};

/// Axis byte offsets.
pub mod axis {
{{- range .Axes}}
    /// {{.Neg}} / {{.Pos}}
    pub const {{.Const}}: usize = {{.Offset}};
{{- end}}
}

/// Buttons as (byte offset, bit mask).
pub mod button {
{{- range .Buttons}}
    /// {{.Action}}
    pub const {{.Const}}: (usize, u8) = ({{.Offset}}, {{.Mask}});
{{- end}}
}

#[derive(Debug, Clone, Copy, Default, PartialEq, Eq)]
pub struct {{.StructName}} {
{{- range .Axes}}
    pub {{.Name}}: u8,
{{- end}}
    pub buttons: [u8; {{.ButtonBytes}}],
}

impl {{.StructName}} {
    pub fn from_bytes(buf: &[u8]) -> Option<Self> {
        if buf.len() != PACKET_SIZE {
            return None;
        }
        let mut buttons = [0u8; {{.ButtonBytes}}];
        buttons.copy_from_slice(&buf[{{.ButtonBase}}..PACKET_SIZE]);
        Some(Self {
{{- range .Axes}}
            {{.Name}}: buf[axis::{{.Const}}],
{{- end}}
            buttons,
        })
    }

    pub fn pressed(&self, button: (usize, u8)) -> bool {
        self.buttons[button.0 - {{.ButtonBase}}] & button.1 != 0
    }
}
`
