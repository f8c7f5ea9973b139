package sequence

import (
	"strconv"
	"strings"
	"text/template"
)

// ClassName is the fixed name of the generated sequence class.
const ClassName = "my_sequence"

// defaultIdleWait replaces a zero-length idle wait, which SystemVerilog
// would render as a useless #0.
const defaultIdleWait = 10

var classTemplate = template.Must(template.New("sequence").Parse(
	`class {{.Name}} extends uvm_sequence #(bus_transaction);
  ` + "`uvm_object_utils({{.Name}})" + `

  function new(string name = "{{.Name}}");
    super.new(name);
  endfunction

  virtual task body();
    bus_transaction tr;
{{- if not .Steps}}

    // add transaction steps to fill in the sequence body
{{- end}}
{{- range .Steps}}

    // step {{.Num}}: {{.Kind}}
{{- if .Idle}}
    #{{.Wait}};
{{- else}}
    tr = bus_transaction::type_id::create("tr");
    start_item(tr);
    assert(tr.randomize() with {
      cmd  == {{.Cmd}};
      addr == {{.Addr}};
{{- if .HasData}}
      data == {{.Data}};
{{- end}}
    });
    finish_item(tr);
{{- if .Wait}}
    #{{.Wait}};
{{- end}}
{{- end}}
{{- end}}
  endtask

endclass
`))

type classView struct {
	Name  string
	Steps []stepView
}

type stepView struct {
	Num     int
	Kind    string
	Cmd     string
	Addr    string
	Data    string
	HasData bool
	Idle    bool
	Wait    string
}

// Compile renders the step list into the sequence class text. It is a pure
// function: the same list always yields byte-identical output. Addr and
// data literals are passed through verbatim; this is display text, not
// checked SystemVerilog.
func Compile(steps []TransactionStep) string {
	view := classView{
		Name:  ClassName,
		Steps: make([]stepView, 0, len(steps)),
	}

	for i, step := range steps {
		sv := stepView{
			Num:  i + 1,
			Kind: string(step.Kind),
		}

		switch step.Kind {
		case StepKindIdle:
			sv.Idle = true
			wait := step.Delay
			if wait == 0 {
				wait = defaultIdleWait
			}
			sv.Wait = strconv.Itoa(wait)

		default:
			sv.Cmd = "BUS_READ"
			if step.Kind == StepKindWrite {
				sv.Cmd = "BUS_WRITE"
				sv.Data = step.Data
				sv.HasData = step.Data != ""
			}
			sv.Addr = step.Addr
			// Zero delay between transactions is meaningful: no wait line.
			if step.Delay != 0 {
				sv.Wait = strconv.Itoa(step.Delay)
			}
		}

		view.Steps = append(view.Steps, sv)
	}

	var out strings.Builder
	// The template is static and the view contains only plain fields, so
	// execution cannot fail.
	_ = classTemplate.Execute(&out, view)
	return out.String()
}
