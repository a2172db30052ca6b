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

// DrawState classifies violations of the rendering and command-recording
// state machine: missing or incompatible bound state, illegal command
// buffer begin/end/reset sequencing, render-pass and framebuffer misuse,
// descriptor-set update/bind errors, swapchain lifecycle errors, and
// double-destroy/in-use-at-destroy conditions.
//
// These values mark the distinguishable failure outcomes of an implicit
// command-buffer state machine (initial → recording → executable →
// pending → invalid) with orthogonal bound-resource sub-states. The state
// machine itself lives in the validation checks; a DrawState value only
// names the illegal transition or the action taken in a state that does
// not permit it.
//
// This is by far the largest domain of the taxonomy.
type DrawState int32

const (
	// DrawStateNone is the sentinel: no draw-state violation detected.
	DrawStateNone DrawState = iota

	// DrawStateInternalError flags an inconsistency inside the draw-state
	// tracker itself.
	DrawStateInternalError

	// Missing or invalid bound objects referenced by recorded commands.

	DrawStateNoPipelineBound
	DrawStateInvalidSet
	DrawStateInvalidRenderArea
	DrawStateInvalidLayout
	DrawStateInvalidImageLayout
	DrawStateInvalidPipeline
	DrawStateInvalidPipelineCreateState
	DrawStateInvalidCmdBuffer
	DrawStateInvalidBarrier
	DrawStateInvalidBuffer
	DrawStateInvalidImage
	DrawStateInvalidBufferView
	DrawStateInvalidImageView
	DrawStateInvalidQuery
	DrawStateInvalidQueryPool
	DrawStateInvalidDescriptorPool
	DrawStateInvalidCmdPool
	DrawStateInvalidFence
	DrawStateInvalidEvent
	DrawStateInvalidSampler
	DrawStateInvalidFramebuffer
	DrawStateInvalidDeviceMemory

	// Vertex fetch.

	DrawStateVtxIndexOutOfBounds
	DrawStateVtxIndexAlignmentError
	DrawStateOutOfMemory

	// Descriptor set update and allocation errors.

	DrawStateInvalidDescriptorSet
	DrawStateDescriptorTypeMismatch
	DrawStateDescriptorStageFlagsMismatch
	DrawStateDescriptorUpdateOutOfBounds
	// DrawStateDescriptorPoolEmpty flags an allocation from an exhausted pool.
	DrawStateDescriptorPoolEmpty
	// DrawStateCantFreeFromNonFreePool flags a free from a pool created
	// without the free-descriptor-set capability.
	DrawStateCantFreeFromNonFreePool
	DrawStateInvalidWriteUpdate
	DrawStateInvalidCopyUpdate
	DrawStateInvalidUpdateStruct
	DrawStateNumSamplesMismatch

	// Command buffer recording lifecycle. Each value names an illegal
	// transition of the initial → recording → executable → pending cycle.

	// DrawStateNoEndCmdBuffer flags a submit of a command buffer still in
	// the recording state.
	DrawStateNoEndCmdBuffer
	// DrawStateNoBeginCmdBuffer flags a record or end on a command buffer
	// that never entered the recording state.
	DrawStateNoBeginCmdBuffer
	// DrawStateCmdBufferSingleSubmitViolation flags a resubmit of a
	// one-time-submit command buffer.
	DrawStateCmdBufferSingleSubmitViolation
	DrawStateInvalidSecondaryCmdBuffer

	// Dynamic state that must be bound before a draw in the recording state.

	DrawStateViewportNotBound
	DrawStateScissorNotBound
	DrawStateLineWidthNotBound
	DrawStateDepthBiasNotBound
	DrawStateBlendNotBound
	DrawStateDepthBoundsNotBound
	DrawStateStencilNotBound
	DrawStateIndexBufferNotBound

	// Render pass and framebuffer compatibility and sequencing.

	DrawStatePipelineLayoutsIncompatible
	DrawStateRenderpassIncompatible
	DrawStateFramebufferIncompatible
	DrawStateInvalidFramebufferCreateInfo
	DrawStateInvalidRenderpass
	// DrawStateInvalidRenderpassCmd flags a command that is not allowed
	// inside an active render pass.
	DrawStateInvalidRenderpassCmd
	// DrawStateNoActiveRenderpass flags a draw or render-pass-scoped
	// command recorded with no render pass active.
	DrawStateNoActiveRenderpass
	DrawStateInvalidImageUsage
	DrawStateInvalidAttachmentIndex

	// Descriptor set binding at draw time.

	DrawStateDescriptorSetNotUpdated
	DrawStateDescriptorSetNotBound
	DrawStateInvalidDynamicOffsetCount
	// DrawStateClearCmdBeforeDraw flags a full-extent clear recorded
	// before any draw; the load-op is the cheaper path.
	DrawStateClearCmdBeforeDraw
	DrawStateBeginCmdBufferInvalidState
	DrawStateInvalidCmdBufferSimultaneousUse
	// DrawStateInvalidCmdBufferReset flags a reset of a command buffer
	// whose pool does not allow individual resets.
	DrawStateInvalidCmdBufferReset
	DrawStateViewportScissorMismatch
	DrawStateInvalidImageAspect
	DrawStateMissingAttachmentReference
	DrawStateSamplerDescriptorError
	DrawStateInconsistentImmutableSamplerUpdate
	DrawStateImageViewDescriptorError
	DrawStateBufferViewDescriptorError
	DrawStateBufferInfoDescriptorError
	DrawStateDynamicOffsetOverflow

	// Destruction ordering.

	// DrawStateDoubleDestroy flags a second destroy of the same object.
	DrawStateDoubleDestroy
	// DrawStateObjectInUse flags a destroy of an object still referenced
	// by a pending command buffer.
	DrawStateObjectInUse
	DrawStateQueueForwardProgress

	// Buffer offset alignment and range checks.

	DrawStateInvalidBufferMemoryOffset
	DrawStateInvalidTexelBufferOffset
	DrawStateInvalidUniformBufferOffset
	DrawStateInvalidStorageBufferOffset

	DrawStatePushConstantsError
	DrawStateInvalidSubpassIndex

	// Swapchain lifecycle.

	// DrawStateSwapchainNoSyncForAcquire flags an image acquire with
	// neither a fence nor a semaphore to wait on.
	DrawStateSwapchainNoSyncForAcquire
	DrawStateSwapchainInvalidImage
	// DrawStateSwapchainImageNotAcquired flags a present of an image that
	// was never acquired by the application.
	DrawStateSwapchainImageNotAcquired
	DrawStateSwapchainAlreadyExists
	DrawStateSwapchainWrongSurface
	// DrawStateSwapchainCreateBeforeQuery flags a swapchain created before
	// the surface capabilities were queried.
	DrawStateSwapchainCreateBeforeQuery
	DrawStateSwapchainUnsupportedQueue
	DrawStateSwapchainBadImageCount
	DrawStateSwapchainBadExtents
	DrawStateSwapchainBadPreTransform
	DrawStateSwapchainBadCompositeAlpha
	DrawStateSwapchainBadLayerCount
	DrawStateSwapchainBadUsageFlags
	DrawStateSwapchainTooManyImages
	DrawStateSwapchainBadPresentMode
)

// drawStateNames holds the stable symbolic name of every DrawState value.
// Append-only: entries are never renamed or removed.
var drawStateNames = map[DrawState]string{
	DrawStateNone:                               "none",
	DrawStateInternalError:                      "internal_error",
	DrawStateNoPipelineBound:                    "no_pipeline_bound",
	DrawStateInvalidSet:                         "invalid_set",
	DrawStateInvalidRenderArea:                  "invalid_render_area",
	DrawStateInvalidLayout:                      "invalid_layout",
	DrawStateInvalidImageLayout:                 "invalid_image_layout",
	DrawStateInvalidPipeline:                    "invalid_pipeline",
	DrawStateInvalidPipelineCreateState:         "invalid_pipeline_create_state",
	DrawStateInvalidCmdBuffer:                   "invalid_cmd_buffer",
	DrawStateInvalidBarrier:                     "invalid_barrier",
	DrawStateInvalidBuffer:                      "invalid_buffer",
	DrawStateInvalidImage:                       "invalid_image",
	DrawStateInvalidBufferView:                  "invalid_buffer_view",
	DrawStateInvalidImageView:                   "invalid_image_view",
	DrawStateInvalidQuery:                       "invalid_query",
	DrawStateInvalidQueryPool:                   "invalid_query_pool",
	DrawStateInvalidDescriptorPool:              "invalid_descriptor_pool",
	DrawStateInvalidCmdPool:                     "invalid_cmd_pool",
	DrawStateInvalidFence:                       "invalid_fence",
	DrawStateInvalidEvent:                       "invalid_event",
	DrawStateInvalidSampler:                     "invalid_sampler",
	DrawStateInvalidFramebuffer:                 "invalid_framebuffer",
	DrawStateInvalidDeviceMemory:                "invalid_device_memory",
	DrawStateVtxIndexOutOfBounds:                "vtx_index_out_of_bounds",
	DrawStateVtxIndexAlignmentError:             "vtx_index_alignment_error",
	DrawStateOutOfMemory:                        "out_of_memory",
	DrawStateInvalidDescriptorSet:               "invalid_descriptor_set",
	DrawStateDescriptorTypeMismatch:             "descriptor_type_mismatch",
	DrawStateDescriptorStageFlagsMismatch:       "descriptor_stage_flags_mismatch",
	DrawStateDescriptorUpdateOutOfBounds:        "descriptor_update_out_of_bounds",
	DrawStateDescriptorPoolEmpty:                "descriptor_pool_empty",
	DrawStateCantFreeFromNonFreePool:            "cant_free_from_non_free_pool",
	DrawStateInvalidWriteUpdate:                 "invalid_write_update",
	DrawStateInvalidCopyUpdate:                  "invalid_copy_update",
	DrawStateInvalidUpdateStruct:                "invalid_update_struct",
	DrawStateNumSamplesMismatch:                 "num_samples_mismatch",
	DrawStateNoEndCmdBuffer:                     "no_end_cmd_buffer",
	DrawStateNoBeginCmdBuffer:                   "no_begin_cmd_buffer",
	DrawStateCmdBufferSingleSubmitViolation:     "cmd_buffer_single_submit_violation",
	DrawStateInvalidSecondaryCmdBuffer:          "invalid_secondary_cmd_buffer",
	DrawStateViewportNotBound:                   "viewport_not_bound",
	DrawStateScissorNotBound:                    "scissor_not_bound",
	DrawStateLineWidthNotBound:                  "line_width_not_bound",
	DrawStateDepthBiasNotBound:                  "depth_bias_not_bound",
	DrawStateBlendNotBound:                      "blend_not_bound",
	DrawStateDepthBoundsNotBound:                "depth_bounds_not_bound",
	DrawStateStencilNotBound:                    "stencil_not_bound",
	DrawStateIndexBufferNotBound:                "index_buffer_not_bound",
	DrawStatePipelineLayoutsIncompatible:        "pipeline_layouts_incompatible",
	DrawStateRenderpassIncompatible:             "renderpass_incompatible",
	DrawStateFramebufferIncompatible:            "framebuffer_incompatible",
	DrawStateInvalidFramebufferCreateInfo:       "invalid_framebuffer_create_info",
	DrawStateInvalidRenderpass:                  "invalid_renderpass",
	DrawStateInvalidRenderpassCmd:               "invalid_renderpass_cmd",
	DrawStateNoActiveRenderpass:                 "no_active_renderpass",
	DrawStateInvalidImageUsage:                  "invalid_image_usage",
	DrawStateInvalidAttachmentIndex:             "invalid_attachment_index",
	DrawStateDescriptorSetNotUpdated:            "descriptor_set_not_updated",
	DrawStateDescriptorSetNotBound:              "descriptor_set_not_bound",
	DrawStateInvalidDynamicOffsetCount:          "invalid_dynamic_offset_count",
	DrawStateClearCmdBeforeDraw:                 "clear_cmd_before_draw",
	DrawStateBeginCmdBufferInvalidState:         "begin_cmd_buffer_invalid_state",
	DrawStateInvalidCmdBufferSimultaneousUse:    "invalid_cmd_buffer_simultaneous_use",
	DrawStateInvalidCmdBufferReset:              "invalid_cmd_buffer_reset",
	DrawStateViewportScissorMismatch:            "viewport_scissor_mismatch",
	DrawStateInvalidImageAspect:                 "invalid_image_aspect",
	DrawStateMissingAttachmentReference:         "missing_attachment_reference",
	DrawStateSamplerDescriptorError:             "sampler_descriptor_error",
	DrawStateInconsistentImmutableSamplerUpdate: "inconsistent_immutable_sampler_update",
	DrawStateImageViewDescriptorError:           "image_view_descriptor_error",
	DrawStateBufferViewDescriptorError:          "buffer_view_descriptor_error",
	DrawStateBufferInfoDescriptorError:          "buffer_info_descriptor_error",
	DrawStateDynamicOffsetOverflow:              "dynamic_offset_overflow",
	DrawStateDoubleDestroy:                      "double_destroy",
	DrawStateObjectInUse:                        "object_in_use",
	DrawStateQueueForwardProgress:               "queue_forward_progress",
	DrawStateInvalidBufferMemoryOffset:          "invalid_buffer_memory_offset",
	DrawStateInvalidTexelBufferOffset:           "invalid_texel_buffer_offset",
	DrawStateInvalidUniformBufferOffset:         "invalid_uniform_buffer_offset",
	DrawStateInvalidStorageBufferOffset:         "invalid_storage_buffer_offset",
	DrawStatePushConstantsError:                 "push_constants_error",
	DrawStateInvalidSubpassIndex:                "invalid_subpass_index",
	DrawStateSwapchainNoSyncForAcquire:          "swapchain_no_sync_for_acquire",
	DrawStateSwapchainInvalidImage:              "swapchain_invalid_image",
	DrawStateSwapchainImageNotAcquired:          "swapchain_image_not_acquired",
	DrawStateSwapchainAlreadyExists:             "swapchain_already_exists",
	DrawStateSwapchainWrongSurface:              "swapchain_wrong_surface",
	DrawStateSwapchainCreateBeforeQuery:         "swapchain_create_before_query",
	DrawStateSwapchainUnsupportedQueue:          "swapchain_unsupported_queue",
	DrawStateSwapchainBadImageCount:             "swapchain_bad_image_count",
	DrawStateSwapchainBadExtents:                "swapchain_bad_extents",
	DrawStateSwapchainBadPreTransform:           "swapchain_bad_pre_transform",
	DrawStateSwapchainBadCompositeAlpha:         "swapchain_bad_composite_alpha",
	DrawStateSwapchainBadLayerCount:             "swapchain_bad_layer_count",
	DrawStateSwapchainBadUsageFlags:             "swapchain_bad_usage_flags",
	DrawStateSwapchainTooManyImages:             "swapchain_too_many_images",
	DrawStateSwapchainBadPresentMode:            "swapchain_bad_present_mode",
}

// Domain returns DomainDrawState.
func (c DrawState) Domain() Domain { return DomainDrawState }

// Ordinal returns the stable numeric identifier of c within the domain.
func (c DrawState) Ordinal() int32 { return int32(c) }

// IsNone reports whether c is the DrawStateNone sentinel.
func (c DrawState) IsNone() bool { return c == DrawStateNone }

// Valid reports whether c is a registered value of this enumeration.
func (c DrawState) Valid() bool { _, ok := drawStateNames[c]; return ok }

// Symbol returns the domain-qualified symbolic identifier, e.g.
// "drawstate.no_active_renderpass". Unregistered values render as
// "drawstate(N)".
func (c DrawState) Symbol() string {
	if s, ok := drawStateNames[c]; ok {
		return "drawstate." + s
	}
	return unknownSymbol(DomainDrawState, int32(c))
}

// String returns the same form as Symbol.
func (c DrawState) String() string { return c.Symbol() }

// MarshalText implements encoding.TextMarshaler using the symbolic form.
func (c DrawState) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, ErrUnknownCode
	}
	return []byte(c.Symbol()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The input must be the
// domain-qualified symbol of a DrawState value.
func (c *DrawState) UnmarshalText(text []byte) error {
	parsed, err := ParseSymbol(string(text))
	if err != nil {
		return err
	}
	v, ok := parsed.(DrawState)
	if !ok {
		return ErrDomainMismatch
	}
	*c = v
	return nil
}
