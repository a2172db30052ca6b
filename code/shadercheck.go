/*
   Copyright 2026 The VLAYER Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package code

// ShaderCheck classifies mismatches found by static shader-interface
// analysis: stage-to-stage interface type mismatches, unconsumed outputs
// and unproduced inputs, malformed intermediate representation, descriptor
// and push-constant accessibility, and capability/feature requirements.
//
// One value is selected per detected interface defect per offending pair
// of stages or bindings; multiple defects in one shader module yield
// multiple independent reports, each with its own value.
type ShaderCheck int32

const (
	// ShaderCheckNone is the sentinel: no shader-interface violation detected.
	ShaderCheckNone ShaderCheck = iota

	// ShaderCheckInterfaceTypeMismatch flags a type mismatch between the
	// output of one stage and the matching input of the next.
	ShaderCheckInterfaceTypeMismatch

	// ShaderCheckOutputNotConsumed flags a stage output no later stage reads.
	ShaderCheckOutputNotConsumed

	// ShaderCheckInputNotProduced flags a stage input no earlier stage writes.
	ShaderCheckInputNotProduced

	// ShaderCheckNonSpirvShader flags a module that is not valid SPIR-V.
	ShaderCheckNonSpirvShader

	// ShaderCheckInconsistentSpirv flags internally inconsistent SPIR-V.
	ShaderCheckInconsistentSpirv

	// ShaderCheckUnknownStage flags a stage the analysis does not recognize.
	ShaderCheckUnknownStage

	// ShaderCheckInconsistentVertexInput flags a mismatch between vertex
	// input attributes and the vertex stage interface.
	ShaderCheckInconsistentVertexInput

	// ShaderCheckMissingDescriptor flags a shader resource with no matching
	// binding in the descriptor set layout.
	ShaderCheckMissingDescriptor

	// ShaderCheckBadSpecialization flags an invalid specialization constant.
	ShaderCheckBadSpecialization

	// ShaderCheckMissingEntrypoint flags a missing shader entry point.
	ShaderCheckMissingEntrypoint

	// ShaderCheckPushConstantOutOfRange flags a push-constant access outside
	// the declared range.
	ShaderCheckPushConstantOutOfRange

	// ShaderCheckPushConstantNotAccessibleFromStage flags a push-constant
	// range not visible to the using stage.
	ShaderCheckPushConstantNotAccessibleFromStage

	// ShaderCheckDescriptorTypeMismatch flags a descriptor whose declared
	// type disagrees with the shader's use of it.
	ShaderCheckDescriptorTypeMismatch

	// ShaderCheckDescriptorNotAccessibleFromStage flags a descriptor whose
	// stage flags exclude the using stage.
	ShaderCheckDescriptorNotAccessibleFromStage

	// ShaderCheckFeatureNotEnabled flags use of a feature that was not
	// enabled at device creation.
	ShaderCheckFeatureNotEnabled

	// ShaderCheckBadCapability flags a declared capability that is not
	// supported or not enabled.
	ShaderCheckBadCapability

	// ShaderCheckMissingInputAttachment flags a shader input attachment
	// with no matching subpass attachment.
	ShaderCheckMissingInputAttachment

	// ShaderCheckInputAttachmentTypeMismatch flags an input attachment whose
	// format disagrees with the shader's declared type.
	ShaderCheckInputAttachmentTypeMismatch
)

// shaderCheckNames holds the stable symbolic name of every ShaderCheck value.
// Append-only: entries are never renamed or removed.
var shaderCheckNames = map[ShaderCheck]string{
	ShaderCheckNone:                               "none",
	ShaderCheckInterfaceTypeMismatch:              "interface_type_mismatch",
	ShaderCheckOutputNotConsumed:                  "output_not_consumed",
	ShaderCheckInputNotProduced:                   "input_not_produced",
	ShaderCheckNonSpirvShader:                     "non_spirv_shader",
	ShaderCheckInconsistentSpirv:                  "inconsistent_spirv",
	ShaderCheckUnknownStage:                       "unknown_stage",
	ShaderCheckInconsistentVertexInput:            "inconsistent_vertex_input",
	ShaderCheckMissingDescriptor:                  "missing_descriptor",
	ShaderCheckBadSpecialization:                  "bad_specialization",
	ShaderCheckMissingEntrypoint:                  "missing_entrypoint",
	ShaderCheckPushConstantOutOfRange:             "push_constant_out_of_range",
	ShaderCheckPushConstantNotAccessibleFromStage: "push_constant_not_accessible_from_stage",
	ShaderCheckDescriptorTypeMismatch:             "descriptor_type_mismatch",
	ShaderCheckDescriptorNotAccessibleFromStage:   "descriptor_not_accessible_from_stage",
	ShaderCheckFeatureNotEnabled:                  "feature_not_enabled",
	ShaderCheckBadCapability:                      "bad_capability",
	ShaderCheckMissingInputAttachment:             "missing_input_attachment",
	ShaderCheckInputAttachmentTypeMismatch:        "input_attachment_type_mismatch",
}

// Domain returns DomainShaderCheck.
func (c ShaderCheck) Domain() Domain { return DomainShaderCheck }

// Ordinal returns the stable numeric identifier of c within the domain.
func (c ShaderCheck) Ordinal() int32 { return int32(c) }

// IsNone reports whether c is the ShaderCheckNone sentinel.
func (c ShaderCheck) IsNone() bool { return c == ShaderCheckNone }

// Valid reports whether c is a registered value of this enumeration.
func (c ShaderCheck) Valid() bool { _, ok := shaderCheckNames[c]; return ok }

// Symbol returns the domain-qualified symbolic identifier, e.g.
// "shadercheck.output_not_consumed". Unregistered values render as
// "shadercheck(N)".
func (c ShaderCheck) Symbol() string {
	if s, ok := shaderCheckNames[c]; ok {
		return "shadercheck." + s
	}
	return unknownSymbol(DomainShaderCheck, int32(c))
}

// String returns the same form as Symbol.
func (c ShaderCheck) String() string { return c.Symbol() }

// MarshalText implements encoding.TextMarshaler using the symbolic form.
func (c ShaderCheck) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, ErrUnknownCode
	}
	return []byte(c.Symbol()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The input must be the
// domain-qualified symbol of a ShaderCheck value.
func (c *ShaderCheck) UnmarshalText(text []byte) error {
	parsed, err := ParseSymbol(string(text))
	if err != nil {
		return err
	}
	v, ok := parsed.(ShaderCheck)
	if !ok {
		return ErrDomainMismatch
	}
	*c = v
	return nil
}
