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

package catalog

import "vlayer.dev/verrors/code"

// One table per domain. Each table covers its enumeration completely, in
// ordinal order; the coverage test fails the build of any revision that
// appends a code without appending a message.

var memTrackMessages = map[code.MemTrack]string{
	code.MemTrackNone:                        "no memory violation detected",
	code.MemTrackInvalidCmdBuffer:            "attempt to use an invalid or destroyed command buffer",
	code.MemTrackInvalidMemObj:               "attempt to use an invalid or destroyed memory object",
	code.MemTrackInvalidAliasing:             "memory bindings alias in a way the API does not allow",
	code.MemTrackInternalError:               "internal inconsistency in the memory tracker",
	code.MemTrackFreedMemRef:                 "object references memory that has already been freed",
	code.MemTrackInvalidObject:               "attempt to use an invalid or destroyed object",
	code.MemTrackMemoryLeak:                  "memory object still allocated when its owner was destroyed",
	code.MemTrackInvalidState:                "object is in a state that does not permit this operation",
	code.MemTrackResetCmdBufferWhileInFlight: "command buffer reset while submitted work is still in flight",
	code.MemTrackInvalidFenceState:           "fence is in the wrong state for this operation",
	code.MemTrackRebindObject:                "object is already bound to a memory allocation",
	code.MemTrackInvalidUsageFlag:            "operation not permitted by the object's usage flags",
	code.MemTrackInvalidMap:                  "invalid map or unmap of a memory object",
	code.MemTrackInvalidMemType:              "memory type is incompatible with this binding",
	code.MemTrackInvalidMemRegion:            "mapped range exceeds the bounds of the allocation",
	code.MemTrackObjectNotBound:              "object used before being bound to memory",
}

var drawStateMessages = map[code.DrawState]string{
	code.DrawStateNone:                               "no draw-state violation detected",
	code.DrawStateInternalError:                      "internal inconsistency in the draw-state tracker",
	code.DrawStateNoPipelineBound:                    "draw issued with no pipeline bound",
	code.DrawStateInvalidSet:                         "descriptor set is invalid or destroyed",
	code.DrawStateInvalidRenderArea:                  "render area is outside the framebuffer extent",
	code.DrawStateInvalidLayout:                      "pipeline layout is invalid or destroyed",
	code.DrawStateInvalidImageLayout:                 "image is in the wrong layout for this access",
	code.DrawStateInvalidPipeline:                    "pipeline is invalid or destroyed",
	code.DrawStateInvalidPipelineCreateState:         "pipeline create info contains invalid state",
	code.DrawStateInvalidCmdBuffer:                   "command buffer is invalid or destroyed",
	code.DrawStateInvalidBarrier:                     "barrier parameters are invalid in this context",
	code.DrawStateInvalidBuffer:                      "buffer is invalid or destroyed",
	code.DrawStateInvalidImage:                       "image is invalid or destroyed",
	code.DrawStateInvalidBufferView:                  "buffer view is invalid or destroyed",
	code.DrawStateInvalidImageView:                   "image view is invalid or destroyed",
	code.DrawStateInvalidQuery:                       "query is invalid or was never begun",
	code.DrawStateInvalidQueryPool:                   "query pool is invalid or destroyed",
	code.DrawStateInvalidDescriptorPool:              "descriptor pool is invalid or destroyed",
	code.DrawStateInvalidCmdPool:                     "command pool is invalid or destroyed",
	code.DrawStateInvalidFence:                       "fence is invalid or destroyed",
	code.DrawStateInvalidEvent:                       "event is invalid or destroyed",
	code.DrawStateInvalidSampler:                     "sampler is invalid or destroyed",
	code.DrawStateInvalidFramebuffer:                 "framebuffer is invalid or destroyed",
	code.DrawStateInvalidDeviceMemory:                "device memory is invalid or already freed",
	code.DrawStateVtxIndexOutOfBounds:                "vertex index exceeds the bound vertex buffer range",
	code.DrawStateVtxIndexAlignmentError:             "index buffer offset is not aligned to the index type",
	code.DrawStateOutOfMemory:                        "out of memory during draw-state tracking",
	code.DrawStateInvalidDescriptorSet:               "descriptor set is invalid or was never allocated",
	code.DrawStateDescriptorTypeMismatch:             "descriptor update type does not match the layout binding",
	code.DrawStateDescriptorStageFlagsMismatch:       "descriptor stage flags do not match the layout binding",
	code.DrawStateDescriptorUpdateOutOfBounds:        "descriptor update exceeds the bounds of the binding",
	code.DrawStateDescriptorPoolEmpty:                "descriptor pool has no free descriptors of the requested type",
	code.DrawStateCantFreeFromNonFreePool:            "descriptor sets cannot be freed from a pool created without free support",
	code.DrawStateInvalidWriteUpdate:                 "write descriptor update is malformed",
	code.DrawStateInvalidCopyUpdate:                  "copy descriptor update is malformed",
	code.DrawStateInvalidUpdateStruct:                "descriptor update structure type is not recognized",
	code.DrawStateNumSamplesMismatch:                 "pipeline sample count does not match the subpass attachments",
	code.DrawStateNoEndCmdBuffer:                     "command buffer submitted while still recording",
	code.DrawStateNoBeginCmdBuffer:                   "command recorded on a command buffer that was never begun",
	code.DrawStateCmdBufferSingleSubmitViolation:     "one-time-submit command buffer submitted more than once",
	code.DrawStateInvalidSecondaryCmdBuffer:          "secondary command buffer is not allowed in this context",
	code.DrawStateViewportNotBound:                   "draw issued with no viewport bound",
	code.DrawStateScissorNotBound:                    "draw issued with no scissor bound",
	code.DrawStateLineWidthNotBound:                  "draw issued with dynamic line width never set",
	code.DrawStateDepthBiasNotBound:                  "draw issued with dynamic depth bias never set",
	code.DrawStateBlendNotBound:                      "draw issued with dynamic blend constants never set",
	code.DrawStateDepthBoundsNotBound:                "draw issued with dynamic depth bounds never set",
	code.DrawStateStencilNotBound:                    "draw issued with dynamic stencil state never set",
	code.DrawStateIndexBufferNotBound:                "indexed draw issued with no index buffer bound",
	code.DrawStatePipelineLayoutsIncompatible:        "bound descriptor sets use a layout incompatible with the pipeline",
	code.DrawStateRenderpassIncompatible:             "render pass is incompatible with the instance it is used with",
	code.DrawStateFramebufferIncompatible:            "framebuffer is incompatible with the active render pass",
	code.DrawStateInvalidFramebufferCreateInfo:       "framebuffer create info conflicts with its render pass",
	code.DrawStateInvalidRenderpass:                  "render pass is invalid or destroyed",
	code.DrawStateInvalidRenderpassCmd:               "command is not allowed inside a render pass",
	code.DrawStateNoActiveRenderpass:                 "command requires an active render pass",
	code.DrawStateInvalidImageUsage:                  "attachment image was created without the required usage",
	code.DrawStateInvalidAttachmentIndex:             "attachment index exceeds the render pass attachment count",
	code.DrawStateDescriptorSetNotUpdated:            "descriptor set bound before ever being updated",
	code.DrawStateDescriptorSetNotBound:              "pipeline uses a descriptor set that was never bound",
	code.DrawStateInvalidDynamicOffsetCount:          "dynamic offset count does not match the dynamic descriptors",
	code.DrawStateClearCmdBeforeDraw:                 "full-extent clear recorded before any draw; a load op is cheaper",
	code.DrawStateBeginCmdBufferInvalidState:         "begin called on a command buffer in the wrong state",
	code.DrawStateInvalidCmdBufferSimultaneousUse:    "command buffer used concurrently without simultaneous-use",
	code.DrawStateInvalidCmdBufferReset:              "command buffer reset is not allowed by its pool",
	code.DrawStateViewportScissorMismatch:            "viewport count does not match scissor count",
	code.DrawStateInvalidImageAspect:                 "image aspect does not match the image format",
	code.DrawStateMissingAttachmentReference:         "subpass references an attachment that does not exist",
	code.DrawStateSamplerDescriptorError:             "sampler descriptor update references an invalid sampler",
	code.DrawStateInconsistentImmutableSamplerUpdate: "update writes a sampler to an immutable-sampler binding",
	code.DrawStateImageViewDescriptorError:           "image descriptor update references an invalid image view",
	code.DrawStateBufferViewDescriptorError:          "texel descriptor update references an invalid buffer view",
	code.DrawStateBufferInfoDescriptorError:          "buffer descriptor update references an invalid buffer",
	code.DrawStateDynamicOffsetOverflow:              "dynamic offset pushes the descriptor range past the buffer end",
	code.DrawStateDoubleDestroy:                      "object destroyed more than once",
	code.DrawStateObjectInUse:                        "object destroyed while still in use by pending work",
	code.DrawStateQueueForwardProgress:               "waited-on semaphore or fence can never be signaled",
	code.DrawStateInvalidBufferMemoryOffset:          "buffer memory offset violates the required alignment",
	code.DrawStateInvalidTexelBufferOffset:           "texel buffer offset violates the required alignment",
	code.DrawStateInvalidUniformBufferOffset:         "uniform buffer offset violates the device alignment limit",
	code.DrawStateInvalidStorageBufferOffset:         "storage buffer offset violates the device alignment limit",
	code.DrawStatePushConstantsError:                 "push constant range is outside the pipeline layout",
	code.DrawStateInvalidSubpassIndex:                "subpass index exceeds the render pass subpass count",
	code.DrawStateSwapchainNoSyncForAcquire:          "image acquire issued with neither a semaphore nor a fence",
	code.DrawStateSwapchainInvalidImage:              "present references an image not owned by the swapchain",
	code.DrawStateSwapchainImageNotAcquired:          "present references an image that was never acquired",
	code.DrawStateSwapchainAlreadyExists:             "a swapchain already exists for this surface",
	code.DrawStateSwapchainWrongSurface:              "swapchain was created for a different surface",
	code.DrawStateSwapchainCreateBeforeQuery:         "swapchain created before querying surface capabilities",
	code.DrawStateSwapchainUnsupportedQueue:          "presenting queue does not support this surface",
	code.DrawStateSwapchainBadImageCount:             "requested image count is outside the surface limits",
	code.DrawStateSwapchainBadExtents:                "requested extent is outside the surface limits",
	code.DrawStateSwapchainBadPreTransform:           "requested pre-transform is not supported by the surface",
	code.DrawStateSwapchainBadCompositeAlpha:         "requested composite alpha is not supported by the surface",
	code.DrawStateSwapchainBadLayerCount:             "requested layer count is outside the surface limits",
	code.DrawStateSwapchainBadUsageFlags:             "requested usage flags are not supported by the surface",
	code.DrawStateSwapchainTooManyImages:             "more images acquired than the swapchain allows",
	code.DrawStateSwapchainBadPresentMode:            "requested present mode is not supported by the surface",
}

var shaderCheckMessages = map[code.ShaderCheck]string{
	code.ShaderCheckNone:                               "no shader-interface violation detected",
	code.ShaderCheckInterfaceTypeMismatch:              "stage output type does not match the next stage's input",
	code.ShaderCheckOutputNotConsumed:                  "stage output is not consumed by any later stage",
	code.ShaderCheckInputNotProduced:                   "stage input is not produced by any earlier stage",
	code.ShaderCheckNonSpirvShader:                     "shader module is not valid SPIR-V",
	code.ShaderCheckInconsistentSpirv:                  "shader module contains internally inconsistent SPIR-V",
	code.ShaderCheckUnknownStage:                       "shader stage is not recognized",
	code.ShaderCheckInconsistentVertexInput:            "vertex input binding does not match the vertex stage interface",
	code.ShaderCheckMissingDescriptor:                  "shader references a descriptor absent from the set layout",
	code.ShaderCheckBadSpecialization:                  "specialization constant is malformed or out of range",
	code.ShaderCheckMissingEntrypoint:                  "shader module lacks the requested entry point",
	code.ShaderCheckPushConstantOutOfRange:             "push constant access is outside the declared range",
	code.ShaderCheckPushConstantNotAccessibleFromStage: "push constant range is not visible to this stage",
	code.ShaderCheckDescriptorTypeMismatch:             "descriptor type disagrees with the shader's declared use",
	code.ShaderCheckDescriptorNotAccessibleFromStage:   "descriptor stage flags exclude this stage",
	code.ShaderCheckFeatureNotEnabled:                  "shader requires a feature that was not enabled",
	code.ShaderCheckBadCapability:                      "shader declares a capability that is not supported",
	code.ShaderCheckMissingInputAttachment:             "shader input attachment has no matching subpass attachment",
	code.ShaderCheckInputAttachmentTypeMismatch:        "input attachment format disagrees with the shader type",
}

var devLimitsMessages = map[code.DevLimits]string{
	code.DevLimitsNone:                      "no device-limits violation detected",
	code.DevLimitsInvalidInstance:           "invalid instance handle",
	code.DevLimitsInvalidPhysicalDevice:     "invalid physical device handle",
	code.DevLimitsMissingQueryCount:         "properties requested without first querying the count",
	code.DevLimitsMustQueryCount:            "count must come from the preceding query",
	code.DevLimitsInvalidFeatureRequested:   "requested feature is not supported by the device",
	code.DevLimitsCountMismatch:             "related queries returned inconsistent counts",
	code.DevLimitsInvalidQueueCreateRequest: "queue creation request exceeds the queue family limits",
}
